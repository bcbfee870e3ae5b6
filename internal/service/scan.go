package service

import (
	"context"
	"fmt"

	"github.com/lynplan/lynplan/internal/course"
	"github.com/lynplan/lynplan/internal/llm"
	"github.com/lynplan/lynplan/internal/requirements"
)

// ScanService runs a planning-sheet photo through the two vision
// passes, resolves the output against the catalog, and computes
// graduation progress.
type ScanService struct {
	Provider llm.Provider
	Resolver *Resolver
}

// ScanResult is everything one photo produced.
type ScanResult struct {
	Courses      []course.Resolved
	Requirements requirements.AllProgress
	Diagnostics  []Diagnostic
	// RawTable is the pass-1 transcription, useful when a scan comes
	// back with surprising courses.
	RawTable string
}

func (s *ScanService) Scan(ctx context.Context, image []byte, mimeType string) (ScanResult, error) {
	if len(image) == 0 {
		return ScanResult{}, fmt.Errorf("scan: no image data")
	}

	table, err := s.Provider.ExtractTable(ctx, llm.ExtractTableRequest{
		ImageData: image,
		MIMEType:  mimeType,
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("scan: %w", err)
	}

	names := make([]string, 0, s.Resolver.Catalog.Len())
	for _, c := range s.Resolver.Catalog.Courses() {
		names = append(names, c.Name)
	}

	mapped, err := s.Provider.MapCourses(ctx, llm.MapCoursesRequest{
		RawTable:      table.RawTable,
		OfficialNames: names,
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("scan: %w", err)
	}

	resolved, err := s.Resolver.Resolve(mapped.Courses)
	if err != nil {
		return ScanResult{RawTable: table.RawTable, Diagnostics: resolved.Diagnostics}, err
	}

	return ScanResult{
		Courses:      resolved.Courses,
		Requirements: requirements.All(resolved.Courses),
		Diagnostics:  resolved.Diagnostics,
		RawTable:     table.RawTable,
	}, nil
}
