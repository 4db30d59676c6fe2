package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/workshop"
)

func TestAuthClient_Login(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "a@b.com", r.PostFormValue("username"))
		assert.Equal(t, "pw", r.PostFormValue("password"))

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "T1", "token_type": "bearer"})
	}))
	defer ts.Close()

	client := NewAuthClient(ts.URL, nil, nil)
	tok, err := client.Login(context.Background(), "a@b.com", "pw")
	assert.NoError(t, err)
	assert.Equal(t, "T1", tok)
}

func TestAuthClient_LoginRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewAuthClient(ts.URL, nil, nil)
	_, err := client.Login(context.Background(), "a@b.com", "bad")

	var gwErr *Error
	assert.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "auth", gwErr.Domain)
	assert.Equal(t, "login", gwErr.Op)

	var stErr *StatusError
	assert.ErrorAs(t, err, &stErr)
	assert.Equal(t, http.StatusUnauthorized, stErr.Code)
}

func TestAuthClient_Register(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "a@b.com", "password": "pw", "role": "student"}, body)

		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := NewAuthClient(ts.URL, nil, nil)
	assert.NoError(t, client.Register(context.Background(), "a@b.com", "pw", "student"))
}

func TestWorkshopClient_Workshop(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/42", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(workshop.Workshop{ID: 42, Title: "Welding"})
	}))
	defer ts.Close()

	client := NewWorkshopClient(ts.URL, nil, func() string { return "T1" })
	ws, err := client.Workshop(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, 42, ws.ID)
	assert.Equal(t, "Welding", ws.Title)
}

func TestWorkshopClient_Create(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/", r.URL.Path)

		var draft workshop.WorkshopDraft
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Welding", draft.Title)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(workshop.Workshop{ID: 7, Title: draft.Title})
	}))
	defer ts.Close()

	client := NewWorkshopClient(ts.URL, nil, nil)
	ws, err := client.Create(context.Background(), workshop.WorkshopDraft{
		Title: "Welding",
		Steps: []workshop.StepDraft{{Title: "Basics", Substeps: []workshop.SubstepDraft{{Title: "Safety"}}}},
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, ws.ID)
}

func TestWorkshopClient_UpdateProgress(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/progress", r.URL.Path)

		var ev workshop.ProgressEvent
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		assert.Equal(t, workshop.ProgressEvent{
			UserID: 1, WorkshopID: 5, StepID: 10, SubstepID: 100, Status: "completed",
		}, ev)

		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewWorkshopClient(ts.URL, nil, nil)
	err := client.UpdateProgress(context.Background(), workshop.ProgressEvent{
		UserID: 1, WorkshopID: 5, StepID: 10, SubstepID: 100, Status: "completed",
	})
	assert.NoError(t, err)
}

func TestAnalyticsClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/dashboard":
			assert.Equal(t, "1", r.URL.Query().Get("workshop_id"))
			_, _ = w.Write([]byte(`{"completion":[{"user_id":1,"percent_complete":40}],"quiz_scores":[{"user_id":1,"average_score":85.5,"pass_fail":true}]}`))
		case "/at-risk":
			_, _ = w.Write([]byte(`[{"user_id":2,"risk_score":0.9,"reason":"inactive"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := NewAnalyticsClient(ts.URL, nil, nil)

	snap, err := client.Dashboard(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, snap.Completion, 1)
	assert.Equal(t, 85.5, snap.QuizScores[0].AverageScore)
	assert.True(t, snap.QuizScores[0].PassFail)

	atRisk, err := client.AtRisk(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "inactive", atRisk[0].Reason)
}

func TestCertificateClient_ListForUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/7", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"certificate_id":3,"user_id":7,"file_url":"https://certs/1.pdf"}]`))
	}))
	defer ts.Close()

	client := NewCertificateClient(ts.URL, nil, nil)
	certs, err := client.ListForUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, certs, 1)
	assert.Equal(t, "https://certs/1.pdf", certs[0].FileURL)
}

func TestQuizClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/3":
			_, _ = w.Write([]byte(`{"id":3,"title":"Safety Quiz","questions":[{"id":1,"content":"?","options":[{"id":1,"label":"a"}]}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/3/attempts":
			var attempt QuizAttempt
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&attempt))
			assert.Equal(t, 1, attempt.UserID)
			_, _ = w.Write([]byte(`{"id":9,"quiz_id":3,"user_id":1,"score":80,"pass_fail":true}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	client := NewQuizClient(ts.URL, nil, nil)

	quiz, err := client.Quiz(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "Safety Quiz", quiz.Title)

	res, err := client.Submit(context.Background(), 3, QuizAttempt{UserID: 1, Answers: map[int]int{1: 1}})
	assert.NoError(t, err)
	assert.True(t, res.PassFail)
	assert.Equal(t, 80, res.Score)
}

func TestUserClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/7":
			_, _ = w.Write([]byte(`{"user_id":7,"bio":"welder","department":"metals"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/profile":
			var p Profile
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			_ = json.NewEncoder(w).Encode(p)
		case r.Method == http.MethodPost && r.URL.Path == "/7/roles":
			var body map[string]int
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]int{"role_id": 2, "assigned_by": 1}, body)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	client := NewUserClient(ts.URL, nil, nil)

	p, err := client.Profile(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "welder", p.Bio)

	saved, err := client.UpsertProfile(context.Background(), Profile{UserID: 7, Bio: "senior welder"})
	assert.NoError(t, err)
	assert.Equal(t, "senior welder", saved.Bio)

	assert.NoError(t, client.AssignRole(context.Background(), 7, 2, 1))
}

func TestClient_NetworkError(t *testing.T) {
	// nothing listens here
	client := NewWorkshopClient("http://127.0.0.1:1", nil, nil)
	_, err := client.Workshop(context.Background(), 1)

	var gwErr *Error
	assert.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "workshop", gwErr.Domain)
	assert.Equal(t, "get", gwErr.Op)
}
