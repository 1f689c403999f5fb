package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hhsaputraa/random-team-maker/internal/server/middleware"
	"github.com/hhsaputraa/random-team-maker/internal/teams"
	"github.com/hhsaputraa/random-team-maker/internal/types"
)

const maxRequestBody = 1 << 20

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}

// fail writes err with the status HTTPStatus assigns to it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", middleware.GetRequestID(r.Context()), "error", err)
	}
	s.errorResponse(w, status, err.Error())
}

// handleBuildTeams partitions the posted members into teams
func (s *Server) handleBuildTeams(w http.ResponseWriter, r *http.Request) {
	var req types.BuildTeamsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.metrics.buildRejected()
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.metrics.buildRejected()
		s.fail(w, r, validationError(err))
		return
	}

	teamSize := s.defaultTeamSize
	if req.TeamSize != nil {
		teamSize = *req.TeamSize
	}

	logger := s.logger.With("request_id", middleware.GetRequestID(r.Context()))
	opts := []teams.Option{teams.WithLogger(logger)}
	if req.Seed != nil {
		opts = append(opts, teams.WithRandom(teams.NewSeededRandom(*req.Seed)))
	}

	start := time.Now()
	result, err := teams.NewBuilder(opts...).Build(req.Members, teamSize)
	if err != nil {
		s.metrics.buildRejected()
		s.fail(w, r, err)
		return
	}
	s.metrics.observeBuild(time.Since(start).Seconds(), len(result.Unassigned))

	logger.Info("teams built",
		"result_id", result.ID,
		"members", result.TotalMembers,
		"teams", len(result.Teams),
		"team_size", teamSize)

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRecalculate recomputes company distributions after client-side edits
func (s *Server) handleRecalculate(w http.ResponseWriter, r *http.Request) {
	var req types.TeamsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.metrics.observeEdit("recalculate", err)
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		err = validationError(err)
		s.metrics.observeEdit("recalculate", err)
		s.fail(w, r, err)
		return
	}

	list := teams.Recalculate(req.Teams)
	s.metrics.observeEdit("recalculate", nil)
	s.jsonResponse(w, http.StatusOK, types.TeamsResponse{Teams: list, Pool: req.Pool})
}

// handleMoveMember moves one member between teams
func (s *Server) handleMoveMember(w http.ResponseWriter, r *http.Request) {
	var req types.MoveMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.metrics.observeEdit("move", err)
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		err = validationError(err)
		s.metrics.observeEdit("move", err)
		s.fail(w, r, err)
		return
	}

	list, err := teams.MoveMember(req.Teams, req.FromTeam, req.MemberIndex, req.ToTeam)
	s.metrics.observeEdit("move", err)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.TeamsResponse{Teams: list, Pool: req.Pool})
}

// handleRemoveTeam drops an empty team
func (s *Server) handleRemoveTeam(w http.ResponseWriter, r *http.Request) {
	var req types.RemoveTeamRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.metrics.observeEdit("remove", err)
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		err = validationError(err)
		s.metrics.observeEdit("remove", err)
		s.fail(w, r, err)
		return
	}

	list, err := teams.RemoveTeam(req.Teams, req.TeamID)
	s.metrics.observeEdit("remove", err)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.TeamsResponse{Teams: list, Pool: req.Pool})
}

// handleParkMember moves a member from a team into the holding pool
func (s *Server) handleParkMember(w http.ResponseWriter, r *http.Request) {
	var req types.ParkMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.metrics.observeEdit("park", err)
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		err = validationError(err)
		s.metrics.observeEdit("park", err)
		s.fail(w, r, err)
		return
	}

	list, pool, err := teams.ParkMember(req.Teams, req.Pool, req.TeamID, req.MemberIndex)
	s.metrics.observeEdit("park", err)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.TeamsResponse{Teams: list, Pool: pool})
}

// handlePlaceMember moves a member from the holding pool into a team
func (s *Server) handlePlaceMember(w http.ResponseWriter, r *http.Request) {
	var req types.PlaceMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.metrics.observeEdit("place", err)
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		err = validationError(err)
		s.metrics.observeEdit("place", err)
		s.fail(w, r, err)
		return
	}

	list, pool, err := teams.PlaceMember(req.Teams, req.Pool, req.PoolIndex, req.TeamID)
	s.metrics.observeEdit("place", err)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.TeamsResponse{Teams: list, Pool: pool})
}
