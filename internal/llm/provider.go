package llm

import "context"

// Provider defines the two vision passes used by the scan pipeline.
type Provider interface {
	// ExtractTable transcribes the planning-sheet photo into raw cell
	// text organized by grade column.
	ExtractTable(ctx context.Context, req ExtractTableRequest) (ExtractTableResponse, error)
	// MapCourses maps the raw cell text onto official course names.
	MapCourses(ctx context.Context, req MapCoursesRequest) (MapCoursesResponse, error)
}

type ExtractTableRequest struct {
	ImageData []byte
	MIMEType  string
}

type ExtractTableResponse struct {
	// RawTable is the model's JSON transcription, kept verbatim so the
	// second pass sees exactly what the first pass produced.
	RawTable string
}

type MapCoursesRequest struct {
	RawTable      string
	OfficialNames []string
}

type MapCoursesResponse struct {
	Courses []ExtractedCourse
}

// ExtractedCourse is one course entry read off the sheet. Grade is 9
// through 12, or 0 when the column could not be determined.
type ExtractedCourse struct {
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}
