package greenhouse

// FlattenOffices walks the office → department → job tree in API response
// order and returns one Posting per distinct job ID. Greenhouse lists a job
// under every office it belongs to, so the same ID can appear several times
// in the tree; the first occurrence wins and later ones are dropped.
func FlattenOffices(offices []Office) []Posting {
	seen := make(map[int64]bool)
	var postings []Posting

	for _, office := range offices {
		for _, dept := range office.Departments {
			for _, job := range dept.Jobs {
				if seen[job.ID] {
					continue
				}
				seen[job.ID] = true
				postings = append(postings, Posting{
					OfficeID:       office.ID,
					OfficeName:     office.Name,
					DepartmentID:   dept.ID,
					DepartmentName: dept.Name,
					Job:            job,
				})
			}
		}
	}
	return postings
}
