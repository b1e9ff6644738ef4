// Package ai calls the Gemini generateContent endpoint to enrich conflict
// analysis with free-text suggestions and to auto-fill a day's schedule.
// Both calls are best-effort collaborators: the service never depends on
// them, and any transport, status or parse failure degrades to an empty
// result instead of propagating.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/schedule"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Analysis is the collaborator's verdict on a candidate booking.
type Analysis struct {
	Conflicts   []string `json:"conflicts"`
	Suggestions []string `json:"suggestions"`
	IsSafe      bool     `json:"isSafe"`
}

// GeneratedBooking is one row of an auto-filled schedule.  It lacks a real
// rombel reference; callers attach a placeholder id before committing.
type GeneratedBooking struct {
	TeacherName string `json:"teacherName"`
	Subject     string `json:"subject"`
	RombelName  string `json:"rombelName"`
	LabID       string `json:"labId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Notes       string `json:"notes"`
}

// Client talks to the Gemini REST API.  A Client with an empty key is
// disabled: both methods return empty results immediately.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// New builds a client.  model defaults to gemini-2.5-flash when empty.
func New(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

// request/response shapes for generateContent.  Only the fields this
// service reads are modeled.

type genRequest struct {
	Contents         []content  `json:"contents"`
	GenerationConfig *genConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type genResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// AnalyzeSchedule asks the collaborator whether the candidate collides with
// the approved bookings and what alternatives exist.  The returned error is
// informational; callers treat any error as "no AI result" and keep going.
func (c *Client) AnalyzeSchedule(ctx context.Context, approved []model.Booking, cand schedule.Candidate) (*Analysis, error) {
	if !c.Enabled() {
		return nil, nil
	}

	existing, err := json.Marshal(approved)
	if err != nil {
		return nil, err
	}
	candidate, err := json.Marshal(cand)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`You are an intelligent school lab scheduler for SMK Bina Nusantara.

Current Approved Bookings:
%s

New Booking Request to Analyze:
%s

The school has 2 Labs: %s and %s.

Task:
1. Check if the new booking request conflicts with any existing approved booking (same lab, overlapping time, same date).
2. If there is a conflict, suggest an alternative time slot or the other lab on the same date if available.
3. If there is no conflict, confirm it is safe.

Respond with strict JSON: {"conflicts": [string], "suggestions": [string], "isSafe": bool}.`,
		existing, candidate, model.Lab1, model.Lab2)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out Analysis
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("malformed analysis payload: %w", err)
	}
	return &out, nil
}

// GenerateMockSchedule asks for a plausible day of bookings used by the
// admin auto-fill.  Failures yield an empty slice, never an aborted request.
func (c *Client) GenerateMockSchedule(ctx context.Context, date string) ([]GeneratedBooking, error) {
	if !c.Enabled() {
		return nil, nil
	}

	prompt := fmt.Sprintf(`Generate a JSON array of 4 realistic computer lab bookings for a vocational school (SMK) on date: %s.
Use these details:
Labs: "%s", "%s".
Classes: "X TJKT 1", "XI TKR 2", "XII Busana", "X Perhotelan".
Subjects: "Informatika", "Desain Grafis", "Simulasi Digital", "CAD".
Teachers: "Pak Budi", "Bu Ani", "Pak Dedi", "Bu Rina".
Times between 07:00 and 15:00. Each booking 90 mins. No overlaps in same lab.
Each element: {"teacherName","subject","rombelName","labId","startTime","endTime","notes"}.`,
		date, model.Lab1, model.Lab2)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var out []GeneratedBooking
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("malformed schedule payload: %w", err)
	}
	return out, nil
}

// generate performs one generateContent call and returns the model's text
// part, which is expected to be a JSON document.
func (c *Client) generate(ctx context.Context, prompt string) ([]byte, error) {
	reqBody := genRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &genConfig{ResponseMimeType: "application/json"},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr genResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty gemini response")
	}
	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	return []byte(text), nil
}
