// Package rpc serves the engine's operations over gRPC and provides a
// typed client for the transport layer.
package rpc

//go:generate protoc --go_out=../../gen --go_opt=paths=source_relative --go-grpc_out=../../gen --go-grpc_opt=paths=source_relative -I ../../proto ../../proto/narrative.proto

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/velvetpath/narrative-engine/gen/enginepb"

	"github.com/velvetpath/narrative-engine/internal/engine"
	"github.com/velvetpath/narrative-engine/internal/graph"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/projection"
)

// #region server

// Server exposes an Engine as the NarrativeEngine gRPC service.
type Server struct {
	pb.UnimplementedNarrativeEngineServer

	engine *engine.Engine
	log    *logrus.Entry
}

// NewServer wraps an engine for gRPC.
func NewServer(eng *engine.Engine, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Server{engine: eng, log: log.WithField("component", "rpc")}
}

// Register attaches the service to a gRPC server.
func (s *Server) Register(g *grpc.Server) {
	pb.RegisterNarrativeEngineServer(g, s)
}

// #endregion server

// #region handlers

func (s *Server) SubmitChoice(ctx context.Context, req *pb.SubmitChoiceRequest) (*pb.SubmitChoiceResponse, error) {
	res, err := s.engine.SubmitChoice(ctx, req.UserId, req.FragmentId, req.ChoiceId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SubmitChoiceResponse{
		Advanced:        res.Advanced,
		AwaitingMission: res.AwaitingMission,
		DenialReason:    string(res.DenialReason),
		DenialDetail:    res.DenialDetail,
		NewFragment:     fragmentToPB(res.NewFragment),
	}, nil
}

func (s *Server) SubmitMission(ctx context.Context, req *pb.SubmitMissionRequest) (*pb.SubmitMissionResponse, error) {
	res, err := s.engine.SubmitMissionResponse(ctx, req.UserId, req.FragmentId, mission.Submission{
		Text:               req.Text,
		ReferencedElements: req.ReferencedElements,
		Connections:        req.Connections,
		Insights:           req.Insights,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.SubmitMissionResponse{
		Passed:            res.Passed,
		Advanced:          res.Advanced,
		AttemptsExhausted: res.AttemptsExhausted,
		NewFragment:       fragmentToPB(res.NewFragment),
	}
	if res.Attempt.ID != "" {
		out.Attempt = attemptToPB(res.Attempt)
	}
	return out, nil
}

func (s *Server) GetState(ctx context.Context, req *pb.GetStateRequest) (*pb.GetStateResponse, error) {
	st, err := s.engine.GetState(ctx, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	view := projection.ViewOfState(st)
	return &pb.GetStateResponse{
		UserId:             view.UserID,
		Status:             view.Status,
		CurrentFragmentId:  view.CurrentFragmentID,
		PendingFragmentId:  view.PendingFragmentID,
		UnlockedClues:      view.UnlockedClues,
		CompletedFragments: view.CompletedFragments,
	}, nil
}

func (s *Server) GetArchetype(ctx context.Context, req *pb.GetArchetypeRequest) (*pb.GetArchetypeResponse, error) {
	prof, err := s.engine.GetArchetype(ctx, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	view := projection.ViewOfProfile(prof)
	return &pb.GetArchetypeResponse{
		UserId:            view.UserID,
		DominantArchetype: view.Dominant,
		Scores:            view.Scores,
	}, nil
}

func (s *Server) PublishFragment(ctx context.Context, req *pb.PublishFragmentRequest) (*pb.PublishFragmentResponse, error) {
	id, err := s.engine.PublishFragment(ctx, fragmentFromPB(req.Fragment))
	if err != nil {
		return nil, toStatus(err)
	}
	s.log.WithField("fragment", id).Info("fragment published")
	return &pb.PublishFragmentResponse{FragmentId: id}, nil
}

func (s *Server) Finalize(ctx context.Context, _ *pb.FinalizeRequest) (*pb.FinalizeResponse, error) {
	if err := s.engine.Finalize(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &pb.FinalizeResponse{}, nil
}

func (s *Server) ResetUser(ctx context.Context, req *pb.ResetUserRequest) (*pb.ResetUserResponse, error) {
	if err := s.engine.Reset(ctx, req.UserId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ResetUserResponse{}, nil
}

// #endregion handlers

// #region status-mapping

// toStatus maps the engine's typed errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, graph.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, engine.ErrUnknownChoice):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, engine.ErrStalePosition),
		errors.Is(err, engine.ErrMissionPending),
		errors.Is(err, engine.ErrNoPendingMission):
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	if ae, ok := graph.AsAdmissionError(err); ok {
		return status.Error(codes.InvalidArgument, ae.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// #endregion status-mapping
