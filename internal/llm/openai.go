package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/notemaster/backend/internal/domain/question"
	"github.com/notemaster/backend/internal/domain/stats"
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint
// (OpenRouter, Ollama, LM Studio, vLLM, etc.).
type OpenAIClient struct {
	url    string // e.g. "https://openrouter.ai/api" or "http://localhost:1234"
	model  string // e.g. "deepseek/deepseek-chat"
	apiKey string // optional bearer token
	client *http.Client
}

// Compile-time check: *OpenAIClient satisfies the Client interface.
var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient creates a client for the given endpoint. The timeout
// bounds every model call; a call past the deadline fails like any other
// external failure instead of hanging the caller.
func NewOpenAIClient(url, model, apiKey string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		url:    strings.TrimRight(url, "/"),
		model:  model,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

const maxRetries = 2

// ============================================================================
// Question generation
// ============================================================================

// generatedQuestion tolerates the answer-key variants the model has been
// seen to produce: "expected_answer" (what the prompt asks for), plus
// "reponse" and "answer" from older prompt wordings.
type generatedQuestion struct {
	Text           string `json:"text"`
	ExpectedAnswer string `json:"expected_answer"`
	Reponse        string `json:"reponse"`
	Answer         string `json:"answer"`
}

func (g generatedQuestion) answer() string {
	switch {
	case g.ExpectedAnswer != "":
		return g.ExpectedAnswer
	case g.Reponse != "":
		return g.Reponse
	default:
		return g.Answer
	}
}

// GenerateQuestions asks the model for a JSON array of question/answer
// pairs covering the note content. It retries once on parse failure (small
// models sometimes need a second try).
func (c *OpenAIClient) GenerateQuestions(ctx context.Context, noteTitle, noteContent string) ([]question.Question, error) {
	prompt := buildGeneratePrompt(noteContent)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.callChat(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		questions, err := parseGeneratedQuestions(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return questions, nil
	}

	return nil, &CallError{
		Op:      "generate",
		Reason:  fmt.Sprintf("no usable questions for note %q after %d attempts", noteTitle, maxRetries),
		Wrapped: lastErr,
	}
}

func parseGeneratedQuestions(raw string) ([]question.Question, error) {
	jsonStr := extractJSON(stripFences(raw), '[', ']')
	if jsonStr == "" {
		return nil, &CallError{Op: "generate", Reason: "no JSON array found in model response"}
	}

	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(jsonStr), &generated); err != nil {
		return nil, &CallError{Op: "generate", Reason: "invalid JSON from model", Wrapped: err}
	}

	questions := make([]question.Question, 0, len(generated))
	for _, g := range generated {
		if strings.TrimSpace(g.Text) == "" {
			continue
		}
		questions = append(questions, question.Question{
			Text:           g.Text,
			ExpectedAnswer: g.answer(),
		})
	}

	if len(questions) == 0 {
		return nil, &CallError{Op: "generate", Reason: "model returned an empty question list"}
	}
	return questions, nil
}

// ============================================================================
// Answer scoring
// ============================================================================

var scoreSalvageRe = regexp.MustCompile(`score["']?\s*:\s*(-?\d+)`)

// ScoreAnswer grades the user's answer on a 0-5 scale. The model is asked
// for {"score": X}; when it wraps or mangles that, parsing falls back to
// fixing single quotes and finally regex-extracting the number before the
// call is declared failed.
func (c *OpenAIClient) ScoreAnswer(ctx context.Context, questionText, expectedAnswer, userAnswer string) (int, error) {
	prompt := buildScorePrompt(questionText, expectedAnswer, userAnswer)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := c.callChat(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		score, err := parseScore(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return score, nil
	}

	return 0, &CallError{
		Op:      "score",
		Reason:  fmt.Sprintf("no usable score after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

func parseScore(raw string) (int, error) {
	cleaned := stripFences(raw)
	// Models occasionally emit {'score': 4}; fix the quotes before parsing.
	cleaned = strings.ReplaceAll(cleaned, "'", `"`)

	var result struct {
		Score *int `json:"score"`
	}
	if jsonStr := extractJSON(cleaned, '{', '}'); jsonStr != "" {
		if err := json.Unmarshal([]byte(jsonStr), &result); err == nil && result.Score != nil {
			return stats.ClampScore(*result.Score), nil
		}
	}

	// Salvage: pull the first number following a "score" key.
	if m := scoreSalvageRe.FindStringSubmatch(cleaned); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return stats.ClampScore(n), nil
		}
	}

	return 0, &CallError{Op: "score", Reason: "no score found in model response"}
}

// ============================================================================
// Chat-completions transport
// ============================================================================

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callChat sends a single request to the model and returns the raw text of
// the first choice.
func (c *OpenAIClient) callChat(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	content := chatResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("model returned empty content")
	}

	return content, nil
}

// ============================================================================
// Response cleanup
// ============================================================================

// stripFences removes a surrounding ```json ... ``` (or plain ```) block.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSON finds the outermost JSON value delimited by open/close in a
// string. It handles nesting correctly and skips delimiters inside quoted
// strings.
func extractJSON(s string, opener, closer byte) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == opener {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == closer {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Prompts — short and directive, with the output schema last so it's the
// final thing the model sees.
// ============================================================================

func buildGeneratePrompt(noteContent string) string {
	return fmt.Sprintf(`From this text, create relatively open-ended questions that allow for active learning.
Choose the right number of questions for the length of the text.

TEXT:
%s

For each question, return a JSON object with two keys: "text" for the question and "expected_answer" for the correct answer.
Respond with ONLY a JSON array of these objects — no explanation, no markdown:
[{"text": "...", "expected_answer": "..."}, ...]`, noteContent)
}

func buildScorePrompt(questionText, expectedAnswer, userAnswer string) string {
	return fmt.Sprintf(`You're a teacher who evaluates a student's response in a caring way.

QUESTION:
%s

CORRECT ANSWER:
%s

STUDENT RESPONSE:
%s

RULES:
- A short answer that contains the essential elements deserves a very good mark.
- If the main keywords are present, the score should be high (4 or 5).
- The form of the answer is less important than the content.
- A concise, precise answer is worth as much as a detailed one.

Respond with ONLY this JSON — no explanation, no markdown:
{"score": X} where X is a number between 0 and 5. Use double quotes for the key "score".`, questionText, expectedAnswer, userAnswer)
}
