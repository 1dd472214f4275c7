package greenhouse

import "testing"

func sampleTree() []Office {
	return []Office{
		{
			ID:   1,
			Name: "Berlin",
			Departments: []Department{
				{ID: 10, Name: "Engineering", Jobs: []BoardJob{
					{ID: 100, Title: "Backend Engineer"},
					{ID: 101, Title: "SRE"},
				}},
				{ID: 11, Name: "Design", Jobs: []BoardJob{
					{ID: 102, Title: "Product Designer"},
				}},
			},
		},
		{
			ID:   2,
			Name: "Remote",
			Departments: []Department{
				// Job 100 is listed again under a second office; only the
				// first occurrence may survive.
				{ID: 10, Name: "Engineering", Jobs: []BoardJob{
					{ID: 100, Title: "Backend Engineer"},
					{ID: 103, Title: "Data Engineer"},
				}},
			},
		},
	}
}

func TestFlattenOffices_DedupesByJobID(t *testing.T) {
	postings := FlattenOffices(sampleTree())

	if len(postings) != 4 {
		t.Fatalf("expected 4 distinct jobs, got %d", len(postings))
	}
	seen := make(map[int64]int)
	for _, p := range postings {
		seen[p.Job.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("expected job %d exactly once, got %d", id, n)
		}
	}
}

func TestFlattenOffices_FirstOccurrenceWinsAttribution(t *testing.T) {
	postings := FlattenOffices(sampleTree())

	var dup *Posting
	for i := range postings {
		if postings[i].Job.ID == 100 {
			dup = &postings[i]
			break
		}
	}
	if dup == nil {
		t.Fatal("expected job 100 in the result")
	}
	if dup.OfficeID != 1 || dup.OfficeName != "Berlin" {
		t.Fatalf("expected attribution to the first office, got office %d (%s)", dup.OfficeID, dup.OfficeName)
	}
	if dup.DepartmentID != 10 || dup.DepartmentName != "Engineering" {
		t.Fatalf("expected department attribution from first occurrence, got %d (%s)", dup.DepartmentID, dup.DepartmentName)
	}
}

func TestFlattenOffices_PreservesTraversalOrder(t *testing.T) {
	postings := FlattenOffices(sampleTree())

	want := []int64{100, 101, 102, 103}
	for i, id := range want {
		if postings[i].Job.ID != id {
			t.Fatalf("expected job %d at position %d, got %d", id, i, postings[i].Job.ID)
		}
	}
}

func TestFlattenOffices_EmptyTree(t *testing.T) {
	if got := FlattenOffices(nil); len(got) != 0 {
		t.Fatalf("expected no postings from an empty tree, got %d", len(got))
	}
	empty := []Office{{ID: 1, Name: "Shell", Departments: []Department{{ID: 2, Name: "Empty"}}}}
	if got := FlattenOffices(empty); len(got) != 0 {
		t.Fatalf("expected no postings from a jobless tree, got %d", len(got))
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "RFC3339", input: "2024-03-14T09:30:00Z", ok: true},
		{name: "Greenhouse offset format", input: "2021-06-25T09:35:43-0400", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "yesterday", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTime(tt.input)
			if tt.ok && got == nil {
				t.Fatalf("expected %q to parse", tt.input)
			}
			if !tt.ok && got != nil {
				t.Fatalf("expected %q to yield nil, got %v", tt.input, got)
			}
		})
	}
}
