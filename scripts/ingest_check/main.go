// Command ingest_check runs a source document through the normalization
// pipeline without starting the API server and reports what it would produce.
// Useful for vetting a departmental export before uploading it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/noah-isme/uta-ingest-api/internal/ingest"
)

func main() {
	var (
		path         string
		variant      string
		disableMerge bool
		dump         bool
	)

	flag.StringVar(&path, "file", "", "Path to the CSV document")
	flag.StringVar(&variant, "variant", "", "Force a schema variant (plan-of-study or complete-timetable)")
	flag.BoolVar(&disableMerge, "no-merge", false, "Keep one allotment per source row")
	flag.BoolVar(&dump, "dump", false, "Print the full normalized dataset as JSON")
	flag.Parse()

	if path == "" {
		log.Fatal("missing required -file flag")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read document: %v", err)
	}

	opts := ingest.Options{DisableMerge: disableMerge}
	switch ingest.Variant(variant) {
	case ingest.VariantPlanOfStudy:
		profile := ingest.PlanOfStudyProfile(ingest.Settings{})
		opts.Profile = &profile
	case ingest.VariantTimetable:
		profile := ingest.TimetableProfile(ingest.Settings{})
		opts.Profile = &profile
	case "":
	default:
		log.Fatalf("unknown variant %q", variant)
	}

	result, err := ingest.New(ingest.Settings{}, nil).Ingest(string(content), opts)
	if err != nil {
		log.Fatalf("ingestion failed: %v", err)
	}

	fmt.Printf("Variant:     %s\n", result.Profile.Variant)
	fmt.Printf("Rows:        %d (%d skipped)\n", result.Summary.TotalRows, result.Summary.SkippedRows)
	fmt.Printf("Departments: %d\n", result.Summary.UniqueDepartments)
	fmt.Printf("Semesters:   %d\n", result.Summary.UniqueSemesters)
	fmt.Printf("Courses:     %d\n", result.Summary.UniqueCourses)
	fmt.Printf("Faculty:     %d\n", result.Summary.UniqueFaculty)
	fmt.Printf("Rooms:       %d\n", result.Summary.UniqueRooms)
	fmt.Printf("Allotments:  %d (%d with schedules)\n", result.Summary.Allotments, result.Summary.SchedulesExtracted)

	if dump {
		payload, err := json.MarshalIndent(result.Dataset, "", "  ")
		if err != nil {
			log.Fatalf("failed to encode dataset: %v", err)
		}
		fmt.Println(string(payload))
	}

	if result.Summary.SkippedRows > 0 {
		os.Exit(1)
	}
}
