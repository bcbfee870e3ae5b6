package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lynplan/lynplan/internal/llm"
)

type fakeProvider struct {
	rawTable   string
	courses    []llm.ExtractedCourse
	extractErr error
	mapErr     error

	gotNames []string
}

func (f *fakeProvider) ExtractTable(ctx context.Context, req llm.ExtractTableRequest) (llm.ExtractTableResponse, error) {
	if f.extractErr != nil {
		return llm.ExtractTableResponse{}, f.extractErr
	}
	return llm.ExtractTableResponse{RawTable: f.rawTable}, nil
}

func (f *fakeProvider) MapCourses(ctx context.Context, req llm.MapCoursesRequest) (llm.MapCoursesResponse, error) {
	f.gotNames = req.OfficialNames
	if f.mapErr != nil {
		return llm.MapCoursesResponse{}, f.mapErr
	}
	return llm.MapCoursesResponse{Courses: f.courses}, nil
}

func TestScanPipeline(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		rawTable: `{"table":{"9th":["Lit/Writing","PE 9"],"11th":["AP Calc-BC"]}}`,
		courses: []llm.ExtractedCourse{
			{Name: "Literature & Writing", Grade: 9},
			{Name: "PE 9", Grade: 9},
			{Name: "AP Calculus BC", Grade: 11},
		},
	}
	svc := &ScanService{Provider: provider, Resolver: newTestResolver()}

	res, err := svc.Scan(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	require.NoError(t, err)
	require.Len(t, res.Courses, 3)
	require.NotEmpty(t, res.RawTable)

	// The full catalog rides along into pass 2.
	require.Equal(t, svc.Resolver.Catalog.Len(), len(provider.gotNames))

	require.Equal(t, 30.0, res.Requirements.Lynbrook.TotalEarned)
	require.False(t, res.Requirements.Lynbrook.MeetsRequirements)
}

func TestScanNoCoursesFound(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		rawTable: `{"table":{}}`,
		courses: []llm.ExtractedCourse{
			{Name: "zzzz qqqq"},
		},
	}
	svc := &ScanService{Provider: provider, Resolver: newTestResolver()}

	_, err := svc.Scan(context.Background(), []byte{0xFF}, "image/jpeg")
	require.ErrorIs(t, err, ErrNoCoursesFound)
}

func TestScanRejectsEmptyImage(t *testing.T) {
	t.Parallel()

	svc := &ScanService{Provider: &fakeProvider{}, Resolver: newTestResolver()}
	_, err := svc.Scan(context.Background(), nil, "")
	require.Error(t, err)
}
