package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ── Parsing ─────────────────────────────────────────────────────────────────

func TestParseScore(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"plain", `{"score": 4}`, 4},
		{"fenced", "```json\n{\"score\": 3}\n```", 3},
		{"single quotes", `{'score': 5}`, 5},
		{"wrapped in prose", `Here is my grade: {"score": 2}. Well done!`, 2},
		{"salvaged by regex", `The score: 4 out of 5`, 4},
		{"clamped high", `{"score": 9}`, 5},
		{"clamped negative", `{"score": -2}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseScore(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected score %d, got %d", tc.want, got)
			}
		})
	}
}

func TestParseScore_NoScore(t *testing.T) {
	if _, err := parseScore("I cannot grade this."); err == nil {
		t.Error("expected error when no score is present")
	}
}

func TestParseGeneratedQuestions(t *testing.T) {
	raw := "```json\n" + `[
		{"text": "What is a goroutine?", "expected_answer": "A lightweight thread"},
		{"text": "Qu'est-ce qu'un channel ?", "reponse": "Un conduit typé"},
		{"text": "What is a mutex?", "answer": "A mutual exclusion lock"}
	]` + "\n```"

	questions, err := parseGeneratedQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	wantAnswers := []string{"A lightweight thread", "Un conduit typé", "A mutual exclusion lock"}
	for i, want := range wantAnswers {
		if questions[i].ExpectedAnswer != want {
			t.Errorf("question %d: expected answer %q, got %q", i, want, questions[i].ExpectedAnswer)
		}
	}
}

func TestParseGeneratedQuestions_SkipsBlankText(t *testing.T) {
	questions, err := parseGeneratedQuestions(`[{"text": "", "answer": "x"}, {"text": "ok", "answer": "y"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 || questions[0].Text != "ok" {
		t.Errorf("expected only the non-blank question, got %+v", questions)
	}
}

func TestParseGeneratedQuestions_EmptyList(t *testing.T) {
	if _, err := parseGeneratedQuestions(`[]`); err == nil {
		t.Error("expected error for an empty question list")
	}
}

func TestExtractJSON(t *testing.T) {
	got := extractJSON(`noise {"a": {"b": "}"}} trailing`, '{', '}')
	if got != `{"a": {"b": "}"}}` {
		t.Errorf("unexpected extraction: %q", got)
	}

	if got := extractJSON("no json here", '{', '}'); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

// ── Transport ───────────────────────────────────────────────────────────────

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	}))
}

func TestScoreAnswer(t *testing.T) {
	server := chatServer(t, `{"score": 4}`)
	defer server.Close()

	client := NewOpenAIClient(server.URL, "test-model", "", 5*time.Second)

	score, err := client.ScoreAnswer(context.Background(), "Q?", "expected", "answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 4 {
		t.Errorf("expected score 4, got %d", score)
	}
}

func TestScoreAnswer_Unreachable(t *testing.T) {
	client := NewOpenAIClient("http://127.0.0.1:1", "test-model", "", 500*time.Millisecond)

	if _, err := client.ScoreAnswer(context.Background(), "Q?", "expected", "answer"); err == nil {
		t.Error("expected error for unreachable endpoint")
	}
}

func TestGenerateQuestions(t *testing.T) {
	server := chatServer(t, `[{"text": "Q1", "expected_answer": "A1"}, {"text": "Q2", "expected_answer": "A2"}]`)
	defer server.Close()

	client := NewOpenAIClient(server.URL, "test-model", "", 5*time.Second)

	questions, err := client.GenerateQuestions(context.Background(), "Title", "Some note content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Text != "Q1" || questions[1].ExpectedAnswer != "A2" {
		t.Errorf("unexpected questions: %+v", questions)
	}
}

func TestGenerateQuestions_GarbageResponse(t *testing.T) {
	server := chatServer(t, "Sorry, I can't help with that.")
	defer server.Close()

	client := NewOpenAIClient(server.URL, "test-model", "", 5*time.Second)

	if _, err := client.GenerateQuestions(context.Background(), "Title", "content"); err == nil {
		t.Error("expected error for a response without JSON")
	}
}
