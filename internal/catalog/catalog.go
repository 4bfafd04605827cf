// Package catalog defines the fixed set of recommendable jobs.
package catalog

import "fmt"

// Job is one recommendable position. Column is the explicit index of the
// job's latent vector in the model's components matrix; the mapping between
// catalog and model is data here, never arithmetic on the job id.
type Job struct {
	ID     int
	Title  string
	Column int
}

// Catalog is an ordered, immutable set of jobs. Iteration order is the
// encounter order used for stable tie-breaking in scoring.
type Catalog []Job

// Default returns the built-in five-job catalog.
func Default() Catalog {
	return Catalog{
		{ID: 101, Title: "Software Engineer", Column: 0},
		{ID: 102, Title: "Data Scientist", Column: 1},
		{ID: 103, Title: "Product Manager", Column: 2},
		{ID: 104, Title: "Marketing Specialist", Column: 3},
		{ID: 105, Title: "UX Designer", Column: 4},
	}
}

// Validate checks the catalog is internally consistent. Run once at startup.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	ids := make(map[int]bool, len(c))
	columns := make(map[int]bool, len(c))
	for _, job := range c {
		if job.Title == "" {
			return fmt.Errorf("job %d has an empty title", job.ID)
		}
		if job.Column < 0 {
			return fmt.Errorf("job %d has a negative model column: %d", job.ID, job.Column)
		}
		if ids[job.ID] {
			return fmt.Errorf("duplicate job id: %d", job.ID)
		}
		if columns[job.Column] {
			return fmt.Errorf("model column %d mapped by more than one job", job.Column)
		}
		ids[job.ID] = true
		columns[job.Column] = true
	}
	return nil
}
