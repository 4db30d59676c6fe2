package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// QuizClient talks to the quiz service.
type QuizClient struct {
	client
}

func NewQuizClient(base string, hc *http.Client, tokens TokenSource) *QuizClient {
	return &QuizClient{newClient("quiz", base, hc, tokens)}
}

type (
	Quiz struct {
		ID        int        `json:"id"`
		Title     string     `json:"title"`
		LinkedTo  string     `json:"linked_to"`
		Duration  int        `json:"duration"`
		Questions []Question `json:"questions"`
	}

	Question struct {
		ID      int      `json:"id"`
		Content string   `json:"content"`
		Type    string   `json:"type"`
		Options []Option `json:"options"`
	}

	Option struct {
		ID        int    `json:"id"`
		Label     string `json:"label"`
		IsCorrect bool   `json:"is_correct"`
	}

	// QuizAttempt maps question ids to the selected option id.
	QuizAttempt struct {
		UserID  int         `json:"user_id"`
		Answers map[int]int `json:"answers"`
	}

	QuizResult struct {
		ID       int  `json:"id"`
		QuizID   int  `json:"quiz_id"`
		UserID   int  `json:"user_id"`
		Score    int  `json:"score"`
		PassFail bool `json:"pass_fail"`
	}
)

func (c *QuizClient) Quiz(ctx context.Context, id int) (Quiz, error) {
	var q Quiz
	err := c.doJSON(ctx, "get", http.MethodGet, fmt.Sprintf("/%d", id), nil, nil, &q)
	return q, err
}

func (c *QuizClient) Submit(ctx context.Context, id int, attempt QuizAttempt) (QuizResult, error) {
	var res QuizResult
	err := c.doJSON(ctx, "submit", http.MethodPost, fmt.Sprintf("/%d/attempts", id), nil, attempt, &res)
	return res, err
}
