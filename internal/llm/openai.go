package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider runs both passes against the OpenAI chat completions
// API with JSON-mode responses.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

var ErrNoAPIKey = fmt.Errorf("openai: api key not configured")

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIProvider{apiKey: strings.TrimSpace(apiKey), model: model}
}

func (p *OpenAIProvider) ensureClient() error {
	if p.apiKey == "" {
		return ErrNoAPIKey
	}
	if p.client == nil {
		p.client = openai.NewClient(p.apiKey)
	}
	return nil
}

const extractTableSystem = `You are an expert OCR system for reading high school course planning tables.

The image may be a phone photo (possibly angled, shadowed, or slightly blurry) or a screenshot.
The table may be partially filled. Empty cells are normal, just skip them.

YOUR TASK: Extract all text from the 4-year course planning grid.

RULES:
- Transcribe EXACTLY what you see in each cell, including abbreviations and handwriting
- Preserve which grade column (9th, 10th, 11th, 12th) each entry belongs to
- If handwriting is unclear, write your best guess. Do NOT skip it
- A cell with multiple lines = multiple course entries for that grade
- Empty cells = omit from the list for that grade
- Ignore row labels on the left side (subject headers like "English", "Math", "PE")

Return JSON:
{
  "table": {
    "9th": ["course1", "course2"],
    "10th": ["course1", "course2"],
    "11th": ["course1", "course2"],
    "12th": ["course1", "course2"]
  }
}`

const extractTableUser = "Extract all course entries from this 4-year planning table, organized by grade column. Include everything written in cells, even abbreviations, partial names, and unclear handwriting. Skip empty cells."

// ExtractTable is pass 1: raw transcription of the table grid.
func (p *OpenAIProvider) ExtractTable(ctx context.Context, req ExtractTableRequest) (ExtractTableResponse, error) {
	if err := p.ensureClient(); err != nil {
		return ExtractTableResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	mime := req.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(req.ImageData))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: extractTableSystem,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: extractTableUser,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		MaxTokens:      3000,
		Temperature:    0.1,
	})
	if err != nil {
		return ExtractTableResponse{}, fmt.Errorf("openai: extract table: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return ExtractTableResponse{}, fmt.Errorf("openai: extract table: empty response")
	}
	return ExtractTableResponse{RawTable: resp.Choices[0].Message.Content}, nil
}

const mapCoursesSystemPrefix = `You are an expert at reading Lynbrook High School 4-year course planning tables.

OFFICIAL LYNBROOK COURSE LIST, use EXACT spelling from this list only:
`

const mapCoursesSystemSuffix = `

YOUR TASK:
1. Read the raw table data (organized by grade column: 9th, 10th, 11th, 12th)
2. For each course cell, map the text to the CLOSEST name in the official list above
3. Record which grade (9, 10, 11, or 12) the course appears in

WHAT TO IGNORE:
- Grade column headers: "9th", "10th", "11th", "12th", "9th Grade", etc.
- Subject row labels on the left: standalone "English", "Math", "Science", "Social Studies", "PE", "World Language", "Visual & Performing Arts"
- Empty cells

WHAT TO EXTRACT (text inside data cells):
- "Lit/Writing", "LA", "World Lit", "AP Calc-BC", "Pre-calc H", "Chem H", "PE 9", "PE Inclusion", "Spanish 2", etc.
- Multi-line cells: extract each line as a separate course entry

COMMON ABBREVIATION MAPPINGS:
- "Lit/Writing", "LA", "English 9", "Eng 9" = "Literature & Writing"
- "World Lit", "English 10" = "World Literature & Writing"
- "Am Lit", "American Lit", "English 11" = "American Literature & Writing"
- "AP Eng Lang", "AP Lang" = "AP English Language & Composition"
- "AP Eng Lit", "AP Lit" = "AP English Literature & Composition"
- "Pre-calc H", "Pre-Calc Honors" = "Pre-Calculus Honors"
- "AP Calc-BC", "Calc BC", "Calc-BC" = "AP Calculus BC"
- "AP Calc-AB", "Calc AB" = "AP Calculus AB"
- "Stats", "AP Stats" = "AP Statistics"
- "Linear Alg", "Dual: Linear Alg" = "Linear Algebra"
- "Chem H" = "Chemistry Honors"; "Bio H" = "Biology Honors"; "Phys H" = "Physics Honors"
- "AP Phys C Mech", "AP Physics C:Mech" = "AP Physics C: Mechanics"
- "AP Physics C E&M" = "AP Physics C: Electricity & Magnetism"
- "AP Env Sci", "AP Environmental" = "AP Environmental Science"
- "AP Gov", "AP Govt" = "AP US Government & Politics"
- "AP US Hist", "APUSH" = "AP US History"
- "AP Macro" = "AP Macroeconomics"; "AP Micro" = "AP Microeconomics"
- "AP Comp Sci A", "AP CS A" = "AP Computer Science A"
- "AP Comp Sci Principles", "AP CSP" = "AP Computer Science Principles"
- "AP Spanish", "AP Span" = "AP Spanish Language & Culture"
- "AP Chinese", "AP Mandarin" = "AP Chinese Language & Culture"

Return JSON: {"courses": [{"name": "Official Course Name", "grade": 9}]}`

// MapCourses is pass 2: the raw transcription plus the official course
// list go back to the model, which outputs official names with grades.
func (p *OpenAIProvider) MapCourses(ctx context.Context, req MapCoursesRequest) (MapCoursesResponse, error) {
	if err := p.ensureClient(); err != nil {
		return MapCoursesResponse{}, err
	}
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	names, err := json.Marshal(req.OfficialNames)
	if err != nil {
		return MapCoursesResponse{}, fmt.Errorf("openai: marshal course list: %w", err)
	}

	user := fmt.Sprintf(`Raw table data from the image (organized by grade column):

%s

Extract all courses with their grade level (9, 10, 11, or 12). Use EXACT official course names from the provided list.`, req.RawTable)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: mapCoursesSystemPrefix + string(names) + mapCoursesSystemSuffix,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		MaxTokens:      2000,
		Temperature:    0.1,
	})
	if err != nil {
		return MapCoursesResponse{}, fmt.Errorf("openai: map courses: %w", err)
	}
	if len(resp.Choices) == 0 {
		return MapCoursesResponse{}, fmt.Errorf("openai: map courses: empty response")
	}
	courses, err := parseExtractedCourses(resp.Choices[0].Message.Content)
	if err != nil {
		return MapCoursesResponse{}, err
	}
	return MapCoursesResponse{Courses: courses}, nil
}

// parseExtractedCourses accepts either {"courses": [...]} or a bare
// array, and tolerates plain-string items. Grades outside 9-12 reset
// to 0.
func parseExtractedCourses(content string) ([]ExtractedCourse, error) {
	content = strings.TrimSpace(content)

	var wrapper struct {
		Courses []json.RawMessage `json:"courses"`
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(content), &wrapper); err == nil {
		items = wrapper.Courses
	} else if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, fmt.Errorf("openai: parse course data: %w", err)
	}

	var out []ExtractedCourse
	for _, raw := range items {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out = append(out, ExtractedCourse{Name: s})
			continue
		}
		var c ExtractedCourse
		if err := json.Unmarshal(raw, &c); err != nil || strings.TrimSpace(c.Name) == "" {
			continue
		}
		c.Name = strings.TrimSpace(c.Name)
		if c.Grade < 9 || c.Grade > 12 {
			c.Grade = 0
		}
		out = append(out, c)
	}
	return out, nil
}
