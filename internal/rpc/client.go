package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/velvetpath/narrative-engine/gen/enginepb"

	"github.com/velvetpath/narrative-engine/internal/engine"
	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/gate"
	"github.com/velvetpath/narrative-engine/internal/mission"
	"github.com/velvetpath/narrative-engine/internal/projection"
)

// #region client-struct

// Client wraps the gRPC connection to a narrative engine service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.NarrativeEngineClient
}

// NewClient connects to an engine service.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, client: pb.NewNarrativeEngineClient(conn)}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real connection.
func NewClientWithService(svc pb.NarrativeEngineClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion client-struct

// #region operations

// SubmitChoice applies one choice for one user.
func (c *Client) SubmitChoice(ctx context.Context, userID, fragmentID, choiceID string) (engine.ChoiceResult, error) {
	resp, err := c.client.SubmitChoice(ctx, &pb.SubmitChoiceRequest{
		UserId:     userID,
		FragmentId: fragmentID,
		ChoiceId:   choiceID,
	})
	if err != nil {
		return engine.ChoiceResult{}, fmt.Errorf("submit choice: %w", err)
	}
	res := engine.ChoiceResult{
		Advanced:        resp.Advanced,
		AwaitingMission: resp.AwaitingMission,
		DenialReason:    gate.DenialReason(resp.DenialReason),
		DenialDetail:    resp.DenialDetail,
	}
	if resp.NewFragment != nil {
		f := fragmentFromPB(resp.NewFragment)
		res.NewFragment = &f
	}
	return res, nil
}

// SubmitMission evaluates a mission submission.
func (c *Client) SubmitMission(ctx context.Context, userID, fragmentID string, sub mission.Submission) (engine.MissionResult, error) {
	resp, err := c.client.SubmitMission(ctx, &pb.SubmitMissionRequest{
		UserId:             userID,
		FragmentId:         fragmentID,
		Text:               sub.Text,
		ReferencedElements: sub.ReferencedElements,
		Connections:        sub.Connections,
		Insights:           sub.Insights,
	})
	if err != nil {
		return engine.MissionResult{}, fmt.Errorf("submit mission: %w", err)
	}
	res := engine.MissionResult{
		Passed:            resp.Passed,
		Advanced:          resp.Advanced,
		AttemptsExhausted: resp.AttemptsExhausted,
	}
	if resp.Attempt != nil {
		res.Attempt = mission.Attempt{
			ID:         resp.Attempt.Id,
			FragmentID: resp.Attempt.FragmentId,
			Kind:       fragment.MissionKind(resp.Attempt.Kind),
			Score:      int(resp.Attempt.Score),
			Passed:     resp.Attempt.Passed,
			Reason:     resp.Attempt.Reason,
		}
	}
	if resp.NewFragment != nil {
		f := fragmentFromPB(resp.NewFragment)
		res.NewFragment = &f
	}
	return res, nil
}

// GetState reads a user's progression view.
func (c *Client) GetState(ctx context.Context, userID string) (projection.StateView, error) {
	resp, err := c.client.GetState(ctx, &pb.GetStateRequest{UserId: userID})
	if err != nil {
		return projection.StateView{}, fmt.Errorf("get state: %w", err)
	}
	return projection.StateView{
		UserID:             resp.UserId,
		Status:             resp.Status,
		CurrentFragmentID:  resp.CurrentFragmentId,
		PendingFragmentID:  resp.PendingFragmentId,
		UnlockedClues:      resp.UnlockedClues,
		CompletedFragments: resp.CompletedFragments,
	}, nil
}

// GetArchetype reads a user's archetype view.
func (c *Client) GetArchetype(ctx context.Context, userID string) (projection.ProfileView, error) {
	resp, err := c.client.GetArchetype(ctx, &pb.GetArchetypeRequest{UserId: userID})
	if err != nil {
		return projection.ProfileView{}, fmt.Errorf("get archetype: %w", err)
	}
	return projection.ProfileView{
		UserID:   resp.UserId,
		Dominant: resp.DominantArchetype,
		Scores:   resp.Scores,
	}, nil
}

// PublishFragment admits a fragment into the remote graph.
func (c *Client) PublishFragment(ctx context.Context, f fragment.Fragment) (string, error) {
	resp, err := c.client.PublishFragment(ctx, &pb.PublishFragmentRequest{
		Fragment: fragmentToPB(&f),
	})
	if err != nil {
		return "", fmt.Errorf("publish fragment: %w", err)
	}
	return resp.FragmentId, nil
}

// Finalize promotes the remote draft set.
func (c *Client) Finalize(ctx context.Context) error {
	if _, err := c.client.Finalize(ctx, &pb.FinalizeRequest{}); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}
	return nil
}

// ResetUser soft-resets a user's progression.
func (c *Client) ResetUser(ctx context.Context, userID string) error {
	if _, err := c.client.ResetUser(ctx, &pb.ResetUserRequest{UserId: userID}); err != nil {
		return fmt.Errorf("reset user: %w", err)
	}
	return nil
}

// #endregion operations
