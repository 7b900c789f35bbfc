package extract

import (
	"fmt"
	"strings"
	"time"

	"task-management/internal/model"
)

const schemaName = "task_info"

// draftSchema is the JSON Schema the model answer must follow.
var draftSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title":       nullable("string", nil),
		"description": nullable("string", nil),
		"priority":    nullable("string", []string{model.LabelLow, model.LabelMedium, model.LabelHigh}),
		"category":    nullable("string", Categories),
		"deadline":    nullable("string", nil),
	},
	"required":             []string{"title", "description", "priority", "category", "deadline"},
	"additionalProperties": false,
}

func nullable(typ string, enum []string) map[string]interface{} {
	prop := map[string]interface{}{"type": []string{typ, "null"}}
	if enum != nil {
		values := make([]interface{}, 0, len(enum)+1)
		for _, v := range enum {
			values = append(values, v)
		}
		prop["enum"] = append(values, nil)
	}
	return prop
}

// systemPrompt builds the instruction with the date context of now.
func systemPrompt(now time.Time) string {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	var b strings.Builder
	b.WriteString("You are a task management assistant. Extract one task from the user's voice transcript ")
	b.WriteString("and answer with a JSON object only.\n\n")

	b.WriteString("Current time:\n")
	fmt.Fprintf(&b, "- date: %s\n", day(0))
	fmt.Fprintf(&b, "- time: %s (%s)\n", now.Format("15:04"), now.Location())
	fmt.Fprintf(&b, "- weekday: %s\n\n", now.Weekday())

	b.WriteString("Fields:\n")
	b.WriteString("1. title: short task title, in the language of the transcript\n")
	b.WriteString("2. description: extra details, null when there are none\n")
	b.WriteString(`3. priority: one of "low", "medium", "high"` + "\n")
	b.WriteString(`4. category: one of "work", "personal", "study", "health", "other"` + "\n")
	b.WriteString("5. deadline: YYYY-MM-DD, null when no date is mentioned\n\n")

	b.WriteString("Date rules:\n")
	fmt.Fprintf(&b, "- 今天 / 今日 / today = %s\n", day(0))
	fmt.Fprintf(&b, "- 明天 / tomorrow = %s\n", day(1))
	fmt.Fprintf(&b, "- 后天 / day after tomorrow = %s\n", day(2))
	b.WriteString("- weekday expressions such as 下周一 or 这周五 are computed from the current date\n")
	b.WriteString("- every relative expression must become an absolute YYYY-MM-DD date\n\n")

	b.WriteString("Defaults: priority \"medium\" and category \"other\" when the transcript does not say.\n")
	b.WriteString("Return the keys title, description, priority, category and deadline.")
	return b.String()
}

func userPrompt(transcript string) string {
	return fmt.Sprintf("Extract the task from this voice transcript:\n\n%q", transcript)
}
