package http

import "task-management/internal/analytics"

type bucketResp struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type categoryResp struct {
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

type prioritiesResp struct {
	High   bucketResp `json:"high"`
	Medium bucketResp `json:"medium"`
	Low    bucketResp `json:"low"`
}

type dayResp struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type trendResp struct {
	Performance string   `json:"performance"`
	Summary     string   `json:"summary"`
	RecentRate  int      `json:"recentRate"`
	Suggestions []string `json:"suggestions"`
}

type reportResp struct {
	Total          int            `json:"total"`
	Completed      int            `json:"completed"`
	Pending        int            `json:"pending"`
	CompletionRate int            `json:"completionRate"`
	Categories     []categoryResp `json:"categories"`
	Priorities     prioritiesResp `json:"priorities"`
	Days           []dayResp      `json:"days"`
	Trend          trendResp      `json:"trend"`
}

func bucket(b analytics.Bucket) bucketResp {
	return bucketResp{Total: b.Total, Completed: b.Completed}
}

func newReportResp(r analytics.Report) reportResp {
	resp := reportResp{
		Total:          r.Total,
		Completed:      r.Completed,
		Pending:        r.Pending,
		CompletionRate: r.CompletionRate,
		Categories:     make([]categoryResp, len(r.Categories)),
		Priorities: prioritiesResp{
			High:   bucket(r.Priorities.High),
			Medium: bucket(r.Priorities.Medium),
			Low:    bucket(r.Priorities.Low),
		},
		Days: make([]dayResp, len(r.Trend)),
		Trend: trendResp{
			Performance: string(r.Performance),
			Summary:     r.Summary,
			RecentRate:  r.RecentRate,
			Suggestions: r.Suggestions,
		},
	}
	for i, c := range r.Categories {
		resp.Categories[i] = categoryResp{Name: c.Name, Total: c.Total, Completed: c.Completed}
	}
	for i, d := range r.Trend {
		resp.Days[i] = dayResp{Date: d.Date, Created: d.Created, Completed: d.Completed}
	}
	return resp
}
