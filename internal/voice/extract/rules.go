package extract

import (
	"regexp"
	"strings"
	"time"

	"task-management/internal/model"
	"task-management/pkg/datemath"
)

const trimSet = " \t\r\n，,。.；;：:、!！"

type priorityRule struct {
	label string
	re    *regexp.Regexp
}

// Low is checked first so "不紧急" is not read as urgent.
var priorityRules = []priorityRule{
	{model.LabelLow, regexp.MustCompile(`(?i)[，,。；;\s]*(?:优先级[是为：:\s]*低|低优先级|不紧急|不着急|不急|low priority|priority[:\s]*low)[，,。；;\s]*`)},
	{model.LabelHigh, regexp.MustCompile(`(?i)[，,。；;\s]*(?:优先级[是为：:\s]*高|高优先级|非常紧急|紧急|加急|high priority|priority[:\s]*high|urgent)[，,。；;\s]*`)},
	{model.LabelMedium, regexp.MustCompile(`(?i)[，,。；;\s]*(?:优先级[是为：:\s]*中等?|中优先级|普通优先级|medium priority|normal priority|priority[:\s]*medium)[，,。；;\s]*`)},
}

type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{CategoryHealth, []string{"锻炼", "跑步", "健身", "体检", "医院", "看病", "吃药", "睡觉", "exercise", "workout", "gym", "doctor", "run "}},
	{CategoryStudy, []string{"学习", "复习", "考试", "作业", "上课", "论文", "背单词", "study", "exam", "homework", "course", "lecture"}},
	{CategoryWork, []string{"会议", "开会", "项目", "周报", "日报", "报告", "客户", "同事", "上线", "meeting", "report", "project", "client", "deploy"}},
	{CategoryPersonal, []string{"买", "购物", "生日", "家里", "朋友", "旅行", "缴费", "shopping", "buy", "birthday", "family", "friend"}},
}

// Rules runs the deterministic pass over a transcript. Relative dates are
// resolved against now in now's location.
func Rules(transcript string, now time.Time) Draft {
	text := strings.TrimSpace(transcript)
	var d Draft

	for _, rule := range priorityRules {
		if rule.re.MatchString(text) {
			d.Priority = ptr(rule.label)
			text = rule.re.ReplaceAllString(text, "，")
			break
		}
	}
	text = strings.Trim(text, trimSet)

	parser := datemath.NewParserInLocation(now.Location())
	if res, ok := parser.Scan(text, now); ok {
		d.Deadline = ptr(parser.FormatDate(res.AbsoluteTime))
	}

	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			d.Category = ptr(rule.category)
			break
		}
	}

	title, description := model.SplitContent(text)
	d.Title = ptr(title)
	d.Description = ptr(description)
	return d
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
