package catalog

import (
	"time"

	"github.com/google/uuid"
)

func builtinPages() []Page {
	return []Page{
		{Route: "/dashboard", Title: "Dashboard", Body: `# Dashboard

Welcome back. Your assistants handled **128 requests** this week.

| Metric | This week | Last week |
|---|---|---|
| Conversations | 42 | 37 |
| Workflows finished | 9 | 6 |
| Credits used | 1,840 | 1,512 |

Start a chat from the sidebar or press ` + "`g`" + ` to jump anywhere.`},
		{Route: "/chat", Title: "Chat", Body: "# Chat\n\nPick a conversation from the history list, or an assistant to start a new one."},
		{Route: "/assistants", Title: "Assistants", Body: "# Assistants\n\nAssistants bundle a prompt, tools and a knowledge base.\n\n- **Copywriter** drafts posts and emails\n- **Analyst** summarises reports\n- **Support** answers product questions"},
		{Route: "/templates", Title: "Templates", Body: "# Templates\n\nBrowse prompt and workflow templates shared by your team.\n\n1. Weekly newsletter\n2. Product launch\n3. Trend report"},
		{Route: "/workflows", Title: "Workflows", Body: "# Workflows\n\nGuided multi-step processes. Open one to see its steps in the sidebar.\n\n- `/trendcast`\n- `/content-studio`"},
		{Route: "/trendcast", Title: "Trendcast", Body: "# Trendcast\n\nTurn a trending topic into a scheduled social campaign.\n\nUse `n` to complete the current step and `p` to go back."},
		{Route: "/content-studio", Title: "Content Studio", Body: "# Content Studio\n\nDraft, render and publish long-form content.\n\nUse `n` to complete the current step and `p` to go back."},
		{Route: "/workflows/run", Title: "Workflow run", Body: "# Workflow run\n\nA custom workflow from `.panta/workflows.yaml`."},
		{Route: "/community", Title: "Community", Body: "# Community\n\n> Share what you built and learn from other teams.\n\nNo new posts today."},
		{Route: "/integrations", Title: "Integrations", Body: "# Integrations\n\n| Service | Status |\n|---|---|\n| Slack | connected |\n| Google Drive | not connected |\n| Notion | connected |"},
		{Route: "/admin/tenants", Title: "Tenants", Body: "# Tenants\n\n| Tenant | Plan | Seats |\n|---|---|---|\n| Acme | Business | 40 |\n| Globex | Starter | 5 |"},
		{Route: "/admin/credits", Title: "Credit usage", Body: "# Credit usage\n\nCredits reset on the first of each month.\n\n| User | Credits |\n|---|---|\n| ada | 620 |\n| grace | 410 |"},
		{Route: "/settings", Title: "Settings", Body: "# Settings\n\nPress `s` to change the theme and notification preferences."},
		{Route: "/help", Title: "Help", Body: "# Help\n\nPress `?` for keyboard shortcuts.\n\nThe sidebar switches between navigation, chat and workflow modes depending on the page."},
		{Route: "/profile", Title: "Profile", Body: "# Profile\n\nYour name and email come from `~/.panta/config.json`."},
	}
}

func builtinAssistants() []Assistant {
	return []Assistant{
		{ID: "copywriter", Name: "Copywriter", Description: "Posts, emails and ads", Route: "/chat/copywriter"},
		{ID: "analyst", Name: "Analyst", Description: "Summaries and reports", Route: "/chat/analyst"},
		{ID: "support", Name: "Support", Description: "Product questions", Route: "/chat/support"},
	}
}

func builtinHistory(now time.Time) []Conversation {
	entries := []struct {
		title string
		ago   time.Duration
	}{
		{"Q3 launch announcement", 20 * time.Minute},
		{"Summarise churn report", 3 * time.Hour},
		{"Newsletter subject lines", 26 * time.Hour},
		{"Onboarding email sequence", 4 * 24 * time.Hour},
		{"Competitor pricing notes", 9 * 24 * time.Hour},
	}

	out := make([]Conversation, len(entries))
	for i, e := range entries {
		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("panta:history:"+e.title)).String()
		out[i] = Conversation{
			ID:        id,
			Title:     e.title,
			Route:     "/chat/" + id[:8],
			UpdatedAt: now.Add(-e.ago),
		}
	}
	return out
}
