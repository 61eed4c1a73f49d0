package rpc

import (
	"reflect"
	"testing"

	"github.com/velvetpath/narrative-engine/internal/fragment"
	"github.com/velvetpath/narrative-engine/internal/mission"
)

func submission(text string) mission.Submission {
	return mission.Submission{Text: text}
}

func testPublishFragment() fragment.Fragment {
	return fragment.Fragment{
		ID: "f9", Title: "Atelier", SequenceLevel: 9,
		Tier: fragment.TierMid, Content: "content",
		Choices: []fragment.Choice{
			{ID: "c1", Label: "Step in", DestinationID: "f10",
				RequiredClues: []string{"clue-map"}},
		},
		Triggers: []fragment.Trigger{{UnlockClue: "clue-brush", CreditAmount: 15}},
		Mission: &fragment.Mission{
			Kind: fragment.MissionObservation, PassThreshold: 70,
			HiddenElement: "the unfinished canvas", WindowHours: 48,
		},
	}
}

func TestFragmentConversionRoundTrip(t *testing.T) {
	in := testPublishFragment()
	out := fragmentFromPB(fragmentToPB(&in))

	if out.ID != in.ID || out.Tier != in.Tier || out.SequenceLevel != in.SequenceLevel {
		t.Fatalf("identity fields lost: %+v", out)
	}
	if !reflect.DeepEqual(out.Choices, in.Choices) {
		t.Fatalf("choices mismatch: %+v vs %+v", out.Choices, in.Choices)
	}
	if !reflect.DeepEqual(out.Triggers, in.Triggers) {
		t.Fatalf("triggers mismatch: %+v", out.Triggers)
	}
	if out.Mission == nil || !reflect.DeepEqual(*out.Mission, *in.Mission) {
		t.Fatalf("mission mismatch: %+v", out.Mission)
	}
}

func TestFragmentConversionNil(t *testing.T) {
	if fragmentToPB(nil) != nil {
		t.Fatal("nil fragment should convert to nil")
	}
	f := fragmentFromPB(nil)
	if f.ID != "" {
		t.Fatalf("nil proto should convert to zero fragment: %+v", f)
	}
}
