package board

import "github.com/thenoetrevino/pipeline/internal/models"

// Seed returns the board the application starts with
func Seed() models.Board {
	b := models.NewBoard()

	seed := map[models.ColumnID][]models.Candidate{
		models.ColumnApplied: {
			{
				ID:         "1",
				Name:       "Alex Johnson",
				Email:      "alex.j@university.edu",
				Role:       "Frontend Developer",
				University: "Tech University",
				Avatar:     models.DefaultAvatar,
				Notes:      "Strong portfolio with React projects",
			},
			{
				ID:         "2",
				Name:       "Jamie Smith",
				Email:      "jamie.s@college.edu",
				Role:       "UX Designer",
				University: "Design College",
				Avatar:     models.DefaultAvatar,
				Notes:      "Great design thinking process",
			},
			{
				ID:         "3",
				Name:       "Taylor Wilson",
				Email:      "t.wilson@university.edu",
				Role:       "Data Scientist",
				University: "State University",
				Avatar:     models.DefaultAvatar,
				Notes:      "Experience with ML projects",
			},
		},
		models.ColumnScreening: {
			{
				ID:         "4",
				Name:       "Morgan Lee",
				Email:      "morgan.l@university.edu",
				Role:       "Backend Developer",
				University: "Tech Institute",
				Avatar:     models.DefaultAvatar,
				Notes:      "Strong Java background",
			},
			{
				ID:         "5",
				Name:       "Casey Rivera",
				Email:      "c.rivera@college.edu",
				Role:       "Full Stack Developer",
				University: "Engineering College",
				Avatar:     models.DefaultAvatar,
				Notes:      "Built several full-stack applications",
			},
		},
		models.ColumnInterview: {
			{
				ID:         "6",
				Name:       "Jordan Patel",
				Email:      "j.patel@university.edu",
				Role:       "DevOps Engineer",
				University: "Tech University",
				Avatar:     models.DefaultAvatar,
				Notes:      "Experience with CI/CD pipelines",
			},
		},
		models.ColumnHired: {
			{
				ID:         "7",
				Name:       "Riley Thompson",
				Email:      "r.thompson@college.edu",
				Role:       "Mobile Developer",
				University: "State College",
				Avatar:     models.DefaultAvatar,
				Notes:      "Excellent React Native skills",
			},
		},
	}

	for i := range b.Columns {
		if candidates, ok := seed[b.Columns[i].ID]; ok {
			b.Columns[i].Candidates = candidates
		}
	}
	return b
}
