package rpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/velvetpath/narrative-engine/gen/enginepb"

	"github.com/velvetpath/narrative-engine/internal/gate"
)

// #region mock

type mockEngineService struct {
	pb.NarrativeEngineClient

	choiceResp *pb.SubmitChoiceResponse
	choiceErr  error

	missionResp *pb.SubmitMissionResponse
	missionErr  error

	stateResp *pb.GetStateResponse
	stateErr  error

	publishResp *pb.PublishFragmentResponse
	publishErr  error
}

func (m *mockEngineService) SubmitChoice(_ context.Context, _ *pb.SubmitChoiceRequest, _ ...grpc.CallOption) (*pb.SubmitChoiceResponse, error) {
	return m.choiceResp, m.choiceErr
}

func (m *mockEngineService) SubmitMission(_ context.Context, _ *pb.SubmitMissionRequest, _ ...grpc.CallOption) (*pb.SubmitMissionResponse, error) {
	return m.missionResp, m.missionErr
}

func (m *mockEngineService) GetState(_ context.Context, _ *pb.GetStateRequest, _ ...grpc.CallOption) (*pb.GetStateResponse, error) {
	return m.stateResp, m.stateErr
}

func (m *mockEngineService) PublishFragment(_ context.Context, _ *pb.PublishFragmentRequest, _ ...grpc.CallOption) (*pb.PublishFragmentResponse, error) {
	return m.publishResp, m.publishErr
}

// #endregion mock

// #region tests

func TestSubmitChoiceAdvanced(t *testing.T) {
	client := NewClientWithService(&mockEngineService{
		choiceResp: &pb.SubmitChoiceResponse{
			Advanced: true,
			NewFragment: &pb.Fragment{
				Id: "f2", Title: "Corridor", SequenceLevel: 2, Tier: "open",
			},
		},
	})

	res, err := client.SubmitChoice(context.Background(), "u1", "f1", "c1")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if !res.Advanced || res.NewFragment == nil || res.NewFragment.ID != "f2" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmitChoiceDenied(t *testing.T) {
	client := NewClientWithService(&mockEngineService{
		choiceResp: &pb.SubmitChoiceResponse{
			DenialReason: "insufficient_tier",
			DenialDetail: "fragment requires tier premium, user has open",
		},
	})

	res, err := client.SubmitChoice(context.Background(), "u1", "f1", "c3")
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if res.Advanced || res.DenialReason != gate.DenialInsufficientTier {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSubmitChoiceError(t *testing.T) {
	client := NewClientWithService(&mockEngineService{
		choiceErr: errors.New("connection refused"),
	})
	if _, err := client.SubmitChoice(context.Background(), "u1", "f1", "c1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSubmitMissionPassed(t *testing.T) {
	client := NewClientWithService(&mockEngineService{
		missionResp: &pb.SubmitMissionResponse{
			Passed:   true,
			Advanced: true,
			Attempt: &pb.MissionAttempt{
				Id: "a1", FragmentId: "f4", Kind: "comprehension", Score: 90, Passed: true,
			},
			NewFragment: &pb.Fragment{Id: "f4"},
		},
	})

	res, err := client.SubmitMission(context.Background(), "u1", "f4", submission("answer text"))
	if err != nil {
		t.Fatalf("SubmitMission: %v", err)
	}
	if !res.Passed || res.Attempt.Score != 90 || res.NewFragment.ID != "f4" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestGetState(t *testing.T) {
	client := NewClientWithService(&mockEngineService{
		stateResp: &pb.GetStateResponse{
			UserId:            "u1",
			Status:            "awaiting_mission",
			CurrentFragmentId: "f2",
			PendingFragmentId: "f4",
			UnlockedClues:     []string{"clue-key"},
		},
	})

	view, err := client.GetState(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if view.Status != "awaiting_mission" || view.PendingFragmentID != "f4" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestPublishFragmentRoundTrip(t *testing.T) {
	client := NewClientWithService(&mockEngineService{
		publishResp: &pb.PublishFragmentResponse{FragmentId: "f9"},
	})

	id, err := client.PublishFragment(context.Background(), testPublishFragment())
	if err != nil {
		t.Fatalf("PublishFragment: %v", err)
	}
	if id != "f9" {
		t.Fatalf("unexpected id: %s", id)
	}
}

// #endregion tests
