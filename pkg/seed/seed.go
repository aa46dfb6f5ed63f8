// Package seed provides the sample records a session starts with. There is
// no backend; these collections are the whole world for a run.
package seed

import (
	"tableflip.dev/reunion/pkg/alumni"
	"tableflip.dev/reunion/pkg/announcement"
	"tableflip.dev/reunion/pkg/chat"
)

// CurrentUserID identifies the session's logged-in actor. The announcements
// composer checks against this ID directly; it is a placeholder policy, not
// a security boundary.
const CurrentUserID = "me"

// Profile returns the current user's starting record.
func Profile() alumni.User {
	return alumni.User{
		ID:             CurrentUserID,
		Name:           "Alex Smith",
		Email:          "alex.smith@example.com",
		School:         "Rabat American School",
		GraduationYear: 2021,
		Occupation:     "Student",
		Bio:            "Hey everyone! I just graduated and I am looking to connect with people in the film industry.",
		Avatar:         "https://picsum.photos/id/433/200/200",
		Location:       "New York, USA",
		Skills:         []string{"Video Editing", "Photography"},
	}
}

// Users returns the seeded alumni directory.
func Users() []alumni.User {
	return []alumni.User{
		{
			ID:             "1",
			Name:           "Sarah Jenkins",
			Email:          "sarah.j@example.com",
			School:         "Rabat American School",
			GraduationYear: 2018,
			Occupation:     "UX Designer at Google",
			Bio:            "Passionate about user-centric design. graduated from RAS in 2018 and went on to study HCI. Happy to mentor students interested in tech.",
			Avatar:         "https://picsum.photos/id/64/200/200",
			Location:       "London, UK",
			Skills:         []string{"Design", "Figma", "React"},
		},
		{
			ID:             "2",
			Name:           "Ahmed Bennani",
			Email:          "ahmed.b@example.com",
			School:         "Rabat American School",
			GraduationYear: 2020,
			Occupation:     "Student at Stanford",
			Bio:            "Currently pursuing a BS in Computer Science. Interested in AI and Robotics. Go Lions!",
			Avatar:         "https://picsum.photos/id/91/200/200",
			Location:       "Palo Alto, CA",
			Skills:         []string{"Python", "Machine Learning", "Robotics"},
		},
		{
			ID:             "3",
			Name:           "Elena Rodriguez",
			Email:          "elena.r@example.com",
			School:         "American School of Madrid",
			GraduationYear: 2015,
			Occupation:     "Architect",
			Bio:            "Designing sustainable urban spaces. Love connecting with other international school alumni.",
			Avatar:         "https://picsum.photos/id/129/200/200",
			Location:       "Madrid, Spain",
			Skills:         []string{"Architecture", "Sustainability", "Urban Planning"},
		},
		{
			ID:             "4",
			Name:           "Michael Chen",
			Email:          "m.chen@example.com",
			School:         "Rabat American School",
			GraduationYear: 2012,
			Occupation:     "Entrepreneur",
			Bio:            "Founded two startups in the fintech space. Looking for co-founders and chatty alumni.",
			Avatar:         "https://picsum.photos/id/177/200/200",
			Location:       "Dubai, UAE",
			Skills:         []string{"Business Strategy", "Finance", "Startups"},
		},
		{
			ID:             "5",
			Name:           "Yasmine Alami",
			Email:          "yasmine.a@example.com",
			School:         "Casablanca American School",
			GraduationYear: 2019,
			Occupation:     "Medical Student",
			Bio:            "Future surgeon. Love traveling and meeting new people from the alumni network.",
			Avatar:         "https://picsum.photos/id/342/200/200",
			Location:       "Paris, France",
			Skills:         []string{"Medicine", "Biology", "Public Health"},
		},
	}
}

// Announcements returns the seeded feed, most recent first.
func Announcements() []announcement.Announcement {
	return []announcement.Announcement{
		{
			ID:       "1",
			Title:    "Annual Alumni Gala Dinner 2024",
			Content:  "Join us for an evening of networking, nostalgia, and celebration at the Sofitel Jardin des Roses. Tickets are available now! All proceeds go towards the scholarship fund.",
			Date:     "2024-05-15",
			Author:   "Alumni Association",
			Category: announcement.Event,
		},
		{
			ID:       "2",
			Title:    "New Mentorship Program Launch",
			Content:  "We are excited to announce our new global mentorship program connecting recent graduates with established professionals. Sign up in the directory tab.",
			Date:     "2024-04-02",
			Author:   "Career Center",
			Category: announcement.News,
		},
		{
			ID:       "3",
			Title:    "Campus Expansion Updates",
			Content:  "The new Arts & Technology wing is finally open! Virtual tours will be available starting next week for all alumni.",
			Date:     "2024-03-20",
			Author:   "School Administration",
			Category: announcement.General,
		},
	}
}

// Chats returns the seeded conversations, keyed by counterpart user ID.
func Chats() chat.Log {
	return chat.Log{
		"1": {
			{ID: "m1", Text: "Hi Sarah! I saw you work at Google now, that's amazing.", IsMe: true, Time: "10:00 AM"},
			{ID: "m2", Text: "Hey Alex! Yes, it's been a wild ride since Rabat. How are you?", IsMe: false, Time: "10:05 AM"},
		},
	}
}
