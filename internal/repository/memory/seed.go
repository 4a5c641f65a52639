package memory

import (
	"context"
	"time"

	"go-careerhub-backend/internal/domain"
)

// Seed loads the built-in mock dataset the portal ships with. The demo
// actors cover each role so every surface is reachable out of the box.
func Seed(ctx context.Context, actors domain.ActorRepository, companies domain.CompanyRepository,
	jobs domain.JobRepository, events domain.EventRepository, courses domain.CourseRepository,
	resumes domain.ResumeRepository) error {

	now := time.Now()

	demoActors := []domain.Actor{
		{
			ID: "admin-1", Name: "G6 Admin", Email: "g6@gmail.com",
			Role: domain.RoleAdmin, Status: domain.StatusActive,
		},
		{
			ID: "employer-1", Name: "Employer User", Email: "employer@demo.com",
			Role: domain.RoleEmployer, Status: domain.StatusActive,
			CompanyID: "company-1", CompanyName: "Demo Company",
			ManagedItems: &domain.ManagedItems{
				JobIDs:   []string{"job-1", "job-2"},
				EventIDs: []string{"event-1"},
			},
		},
		{
			ID: "student-1", Name: "Student User", Email: "student@demo.com",
			Role: domain.RoleStudent, Status: domain.StatusActive,
			Major: "Computer Science", GraduationYear: 2024,
		},
		{
			ID: "student-2", Name: "Maya Chen", Email: "maya@demo.com",
			Role: domain.RoleStudent, Status: domain.StatusPending,
			Major: "Data Science", GraduationYear: 2025,
		},
	}
	for i := range demoActors {
		if err := actors.Create(ctx, &demoActors[i]); err != nil {
			return err
		}
	}

	demoCompanies := []domain.Company{
		{
			ID: "company-1", Name: "Demo Company",
			Description: "Full-stack consultancy partnering with the university on internships.",
			Industry:    []string{"Technology", "Consulting"},
			Location:    "Berlin", Website: "https://demo.example.com",
			Size: "51-200", Founded: 2012, OpenPositions: 2,
		},
		{
			ID: "company-2", Name: "Initech Analytics",
			Description: "Data platform company running the annual campus data challenge.",
			Industry:    []string{"Data", "Finance"},
			Location:    "Munich", Website: "https://initech.example.com",
			Size: "201-500", Founded: 2008, OpenPositions: 1,
		},
	}
	for i := range demoCompanies {
		if err := companies.Create(ctx, &demoCompanies[i]); err != nil {
			return err
		}
	}

	deadline := now.AddDate(0, 1, 0)
	demoJobs := []domain.Job{
		{
			ID: "job-1", Title: "Software Engineer Intern",
			CompanyID: "company-1", CompanyName: "Demo Company",
			Location: "Berlin", Type: domain.JobInternship,
			Description:  "Join our platform team for a six-month internship working across the stack, from Go services to the web frontend.",
			Requirements: []string{"Enrolled CS student", "Familiarity with Git"},
			Salary:       "€1,800/month", PostedDate: now.AddDate(0, 0, -3),
			Deadline: &deadline,
			Tags:     []string{"internship", "go"},
			Skills:   []string{"Go", "SQL"},
		},
		{
			ID: "job-2", Title: "Junior Frontend Developer",
			CompanyID: "company-1", CompanyName: "Demo Company",
			Location: "Remote", Type: domain.JobFullTime,
			Description:  "Build and maintain the customer-facing dashboard together with a small product team. TypeScript experience expected.",
			Requirements: []string{"1+ year TypeScript", "Portfolio of shipped work"},
			Salary:       "€48,000", PostedDate: now.AddDate(0, 0, -12),
			Tags:   []string{"frontend"},
			Skills: []string{"TypeScript", "React"},
		},
		{
			ID: "job-3", Title: "Data Analyst",
			CompanyID: "company-2", CompanyName: "Initech Analytics",
			Location: "Munich", Type: domain.JobFullTime,
			Description:  "Analyze product usage data and build reporting pipelines for our enterprise customers. SQL-heavy day-to-day work.",
			Requirements: []string{"Strong SQL", "Statistics background"},
			Salary:       "€52,000", PostedDate: now.AddDate(0, 0, -45),
			Tags:   []string{"data"},
			Skills: []string{"SQL", "Python"},
		},
	}
	for i := range demoJobs {
		if err := jobs.Create(ctx, &demoJobs[i]); err != nil {
			return err
		}
	}

	demoEvents := []domain.Event{
		{
			ID: "event-1", Title: "Spring Career Fair",
			Description: "Meet thirty employers across tech, finance and consulting.",
			Date:        now.AddDate(0, 0, 14), StartTime: "10:00", EndTime: "16:00",
			Location: "Main Hall", Organizer: "Career Services",
			Type: domain.EventCareerFair, Capacity: 500, RegisteredCount: 210,
		},
		{
			ID: "event-2", Title: "Resume Workshop",
			Description: "Hands-on session on writing resumes that pass screening.",
			Date:        now.AddDate(0, 0, -7), StartTime: "14:00", EndTime: "16:00",
			Location: "Room 204", Organizer: "Career Services",
			Type: domain.EventWorkshop, Virtual: false, Capacity: 40, RegisteredCount: 40,
		},
		{
			ID: "event-3", Title: "Demo Company Info Session",
			Description: "Learn about internship openings at Demo Company.",
			Date:        now.AddDate(0, 0, 5), StartTime: "17:00", EndTime: "18:30",
			Location: "Online", Organizer: "Demo Company",
			Type: domain.EventInfoSession, Virtual: true,
		},
	}
	for i := range demoEvents {
		if err := events.Create(ctx, &demoEvents[i]); err != nil {
			return err
		}
	}

	demoCourses := []domain.Course{
		{
			ID: "course-1", Title: "Intro to Go",
			Description: "Crash course in Go for students with prior programming experience.",
			Provider:    "CS Department", Duration: "6 weeks", Level: "beginner",
			Tags: []string{"programming", "backend"},
		},
		{
			ID: "course-2", Title: "Interview Preparation",
			Description: "Mock interviews and whiteboard practice with alumni.",
			Provider:    "Career Services", Duration: "4 weeks", Level: "all",
			Tags: []string{"career", "soft-skills"},
		},
	}
	for i := range demoCourses {
		if err := courses.Create(ctx, &demoCourses[i]); err != nil {
			return err
		}
	}

	// Every recognized student starts with one default resume.
	defaultResume := domain.Resume{
		ID: "resume-1", OwnerID: "student-1", Title: "My Resume",
		Personal: domain.PersonalInfo{
			FullName: "Student User",
			Email:    "student@demo.com",
		},
		Education: []domain.Education{
			{Institution: "Demo University", Degree: "B.Sc.", Field: "Computer Science", StartDate: "2020-09", EndDate: "2024-07"},
		},
		Skills:   []string{"Go", "SQL"},
		Template: "modern",
	}
	return resumes.Create(ctx, &defaultResume)
}
