package pipeline_test

import (
	"testing"

	"github.com/sluc-lang/sluc/internal/diagnostics"
	"github.com/sluc-lang/sluc/internal/pipeline"
)

type recordingStage struct {
	name string
	ran  *[]string
	fail bool
}

func (s recordingStage) Process(ctx *pipeline.Context) *pipeline.Context {
	*s.ran = append(*s.ran, s.name)
	if s.fail {
		ctx.Errors = append(ctx.Errors, diagnostics.Runtime(0, s.name+" failed"))
	}
	return ctx
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var ran []string
	p := pipeline.New(
		recordingStage{name: "a", ran: &ran},
		recordingStage{name: "b", ran: &ran},
		recordingStage{name: "c", ran: &ran},
	)
	ctx := pipeline.NewContext("source", "file.sluc")
	result := p.Run(ctx)

	want := []string{"a", "b", "c"}
	if len(ran) != len(want) {
		t.Fatalf("got stages run %v, want %v", ran, want)
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Fatalf("got stages run %v, want %v", ran, want)
		}
	}
	if result.Failed() {
		t.Fatal("expected a fully successful run to not be Failed")
	}
}

func TestPipelineStopsAtFirstError(t *testing.T) {
	var ran []string
	p := pipeline.New(
		recordingStage{name: "a", ran: &ran},
		recordingStage{name: "b", ran: &ran, fail: true},
		recordingStage{name: "c", ran: &ran},
	)
	ctx := pipeline.NewContext("source", "file.sluc")
	result := p.Run(ctx)

	if len(ran) != 2 {
		t.Fatalf("got stages run %v, want exactly [a b]", ran)
	}
	if !result.Failed() {
		t.Fatal("expected Failed() to report true")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
}

func TestContextFailedIsFalseInitially(t *testing.T) {
	ctx := pipeline.NewContext("source", "file.sluc")
	if ctx.Failed() {
		t.Fatal("expected a fresh Context to not be failed")
	}
}
