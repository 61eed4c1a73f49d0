package rpc

import (
	pb "github.com/velvetpath/narrative-engine/gen/enginepb"

	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/mission"
)

// #region fragment

func fragmentToPB(f *fragment.Fragment) *pb.Fragment {
	if f == nil {
		return nil
	}
	out := &pb.Fragment{
		Id:            f.ID,
		Title:         f.Title,
		SequenceLevel: int32(f.SequenceLevel),
		Tier:          string(f.Tier),
		Content:       f.Content,
	}
	for _, c := range f.Choices {
		out.Choices = append(out.Choices, &pb.Choice{
			Id:            c.ID,
			Label:         c.Label,
			DestinationId: c.DestinationID,
			RequiredClues: c.RequiredClues,
		})
	}
	for _, t := range f.Triggers {
		out.Triggers = append(out.Triggers, &pb.Trigger{
			UnlockClue:   t.UnlockClue,
			CreditAmount: int32(t.CreditAmount),
		})
	}
	if f.Mission != nil {
		out.Mission = &pb.Mission{
			Kind:          string(f.Mission.Kind),
			PassThreshold: int32(f.Mission.PassThreshold),
			HiddenElement: f.Mission.HiddenElement,
			Keywords:      f.Mission.Keywords,
			Prerequisites: f.Mission.Prerequisites,
			WindowHours:   int32(f.Mission.WindowHours),
		}
	}
	return out
}

func fragmentFromPB(p *pb.Fragment) fragment.Fragment {
	if p == nil {
		return fragment.Fragment{}
	}
	f := fragment.Fragment{
		ID:            p.Id,
		Title:         p.Title,
		SequenceLevel: int(p.SequenceLevel),
		Tier:          fragment.Tier(p.Tier),
		Content:       p.Content,
	}
	for _, c := range p.Choices {
		f.Choices = append(f.Choices, fragment.Choice{
			ID:            c.Id,
			Label:         c.Label,
			DestinationID: c.DestinationId,
			RequiredClues: c.RequiredClues,
		})
	}
	for _, t := range p.Triggers {
		f.Triggers = append(f.Triggers, fragment.Trigger{
			UnlockClue:   t.UnlockClue,
			CreditAmount: int(t.CreditAmount),
		})
	}
	if p.Mission != nil {
		f.Mission = &fragment.Mission{
			Kind:          fragment.MissionKind(p.Mission.Kind),
			PassThreshold: int(p.Mission.PassThreshold),
			HiddenElement: p.Mission.HiddenElement,
			Keywords:      p.Mission.Keywords,
			Prerequisites: p.Mission.Prerequisites,
			WindowHours:   int(p.Mission.WindowHours),
		}
	}
	return f
}

// #endregion fragment

// #region attempt

func attemptToPB(a mission.Attempt) *pb.MissionAttempt {
	return &pb.MissionAttempt{
		Id:              a.ID,
		FragmentId:      a.FragmentID,
		Kind:            string(a.Kind),
		Score:           int32(a.Score),
		Passed:          a.Passed,
		Reason:          a.Reason,
		SubmittedAtUnix: a.SubmittedAt.Unix(),
	}
}

// #endregion attempt
