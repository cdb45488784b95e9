package repository

import (
	"time"

	"github.com/yeetaryan/StackIt/model"
)

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedUser is the mock signed-in user until a real identity provider is
// plugged in.
func SeedUser() model.User {
	return model.User{
		ID:         "u123",
		Name:       "Tom Cook",
		Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256&h=256&q=80",
		Email:      "tom@example.com",
		Reputation: 1250,
		JoinedDate: mustParse("2023-01-15T00:00:00Z"),
		IsActive:   true,
	}
}

// SeedQuestions returns the initial sample question set.
func SeedQuestions() []*model.Question {
	alice := model.User{
		ID:         "u456",
		Name:       "Alice Johnson",
		Avatar:     "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=256&h=256&q=80",
		Reputation: 892,
		IsActive:   true,
	}
	bob := model.User{
		ID:         "u789",
		Name:       "Bob Wilson",
		Avatar:     "https://images.unsplash.com/photo-1519244703995-f4e0f30006d5?w=256&h=256&q=80",
		Reputation: 1456,
		IsActive:   true,
	}
	tom := SeedUser()

	return []*model.Question{
		{
			ID:    "q1",
			Title: "How to handle async operations in JavaScript?",
			Body: "I'm having trouble understanding how to properly handle asynchronous operations in JavaScript. " +
				"Can someone explain the difference between callbacks, promises, and async/await? " +
				"I've been working on a project where I need to fetch data from an API and I'm getting confused about the best approach.",
			Tags:      []string{"javascript", "async", "promises"},
			Votes:     15,
			Views:     234,
			Answers:   []model.Answer{},
			Author:    alice,
			CreatedAt: mustParse("2024-01-15T10:30:00Z"),
		},
		{
			ID:    "q2",
			Title: "Best practices for React component optimization",
			Body: "What are the best practices for optimizing React components? " +
				"I'm looking for techniques to improve performance in a large application. " +
				"My app is getting slower as it grows and I need to optimize it.",
			Tags:  []string{"react", "performance", "optimization"},
			Votes: 8,
			Views: 156,
			Answers: []model.Answer{
				{
					ID: "a1",
					Body: "Here are key React optimization techniques:\n\n" +
						"1. **React.memo()** - Prevents unnecessary re-renders\n" +
						"2. **useMemo()** - Memoizes expensive calculations\n" +
						"3. **useCallback()** - Memoizes functions\n" +
						"4. **Code splitting** - Load components on demand\n" +
						"5. **Virtualization** - For large lists",
					Votes:      12,
					Author:     bob,
					CreatedAt:  mustParse("2024-01-14T18:30:00Z"),
					IsAccepted: true,
				},
			},
			Author:            alice,
			CreatedAt:         mustParse("2024-01-14T16:45:00Z"),
			HasAcceptedAnswer: true,
		},
		{
			ID:    "q3",
			Title: "MySQL vs PostgreSQL: Which database to choose?",
			Body: "I'm starting a new project and need to choose between MySQL and PostgreSQL. " +
				"What are the key differences and use cases for each? " +
				"The project will handle user data and needs to be scalable.",
			Tags:      []string{"mysql", "postgresql", "database"},
			Votes:     12,
			Views:     445,
			Answers:   []model.Answer{},
			Author:    tom,
			CreatedAt: mustParse("2024-01-13T09:15:00Z"),
		},
	}
}

// SeedNotifications returns sample notifications for the mock user,
// newest first.
func SeedNotifications() []*model.Notification {
	return []*model.Notification{
		{
			ID:         "n1",
			Type:       model.NotificationTypeVote,
			Message:    "Someone upvoted your question \"MySQL vs PostgreSQL: Which database to choose?\"",
			QuestionID: "q3",
			CreatedAt:  mustParse("2024-01-15T08:00:00Z"),
		},
		{
			ID:         "n2",
			Type:       model.NotificationTypeVote,
			Message:    "Someone upvoted your question \"MySQL vs PostgreSQL: Which database to choose?\"",
			QuestionID: "q3",
			CreatedAt:  mustParse("2024-01-13T14:20:00Z"),
			Read:       true,
		},
	}
}
