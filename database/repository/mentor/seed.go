package mentorRepo

import (
	"context"
	"fmt"

	"skillbridge/models"
)

// DefaultMentors is the launch roster loaded into an empty directory.
func DefaultMentors() []models.Mentor {
	return []models.Mentor{
		{
			ID:           "1",
			Name:         "Priya Sharma",
			Title:        "Senior Full Stack Developer",
			Company:      "Flipkart",
			Avatar:       "/placeholder.svg",
			Bio:          "Passionate about building scalable web applications. 8+ years experience in full-stack development.",
			Location:     "Bengaluru",
			Languages:    []string{"English", "Hindi", "Kannada"},
			Skills:       []string{"React", "Node.js", "Python", "AWS"},
			HourlyRate:   250000,
			Currency:     "INR",
			Rating:       4.9,
			SessionCount: 234,
			Availability: models.Availability{Summary: "Available today"},
		},
		{
			ID:           "2",
			Name:         "Arjun Verma",
			Title:        "Machine Learning Engineer",
			Company:      "Google India",
			Avatar:       "/placeholder.svg",
			Bio:          "ML engineer specializing in computer vision and NLP. Love helping others break into AI.",
			Location:     "Mumbai",
			Languages:    []string{"English", "Hindi", "Marathi"},
			Skills:       []string{"Python", "TensorFlow", "PyTorch", "MLOps"},
			HourlyRate:   300000,
			Currency:     "INR",
			Rating:       4.8,
			SessionCount: 189,
			Availability: models.Availability{Summary: "Next slot: Tomorrow 2 PM"},
		},
		{
			ID:           "3",
			Name:         "Sneha Patel",
			Title:        "Product Manager",
			Company:      "Zomato",
			Avatar:       "/placeholder.svg",
			Bio:          "Product leader with experience in consumer tech. Helping aspiring PMs navigate their career.",
			Location:     "Delhi",
			Languages:    []string{"English", "Hindi", "Gujarati"},
			Skills:       []string{"Product Strategy", "User Research", "Analytics", "Growth"},
			HourlyRate:   220000,
			Currency:     "INR",
			Rating:       4.7,
			SessionCount: 156,
			Availability: models.Availability{Summary: "Available this week"},
		},
		{
			ID:           "4",
			Name:         "Rakesh Kumar",
			Title:        "DevOps Architect",
			Company:      "PhonePe",
			Avatar:       "/placeholder.svg",
			Bio:          "Cloud infrastructure expert. Specializing in Kubernetes, CI/CD, and cloud-native architectures.",
			Location:     "Bengaluru",
			Languages:    []string{"English", "Hindi", "Tamil"},
			Skills:       []string{"Kubernetes", "Docker", "AWS", "CI/CD"},
			HourlyRate:   280000,
			Currency:     "INR",
			Rating:       4.9,
			SessionCount: 278,
			Availability: models.Availability{Summary: "Available today"},
		},
	}
}

// Seed inserts mentors when the repository is empty and reports how many were added.
func Seed(ctx context.Context, repo MentorRepository, mentors []models.Mentor) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i := range mentors {
		if err := repo.Insert(ctx, &mentors[i]); err != nil {
			return i, fmt.Errorf("seed mentor %s: %w", mentors[i].Name, err)
		}
	}
	return len(mentors), nil
}
