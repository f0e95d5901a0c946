package domain

// 识别的问卷问题（与前端 Quiz 页面一致，需精确匹配）
// 顺序即特征向量中的语义顺序，不要调整
var RecognizedQuestions = []string{
	"How often do you experience asthma symptoms?",
	"Which of the following commonly trigger your symptoms?",
	"Do you notice symptoms worsening in specific weather conditions?",
	"Do you live in or frequently visit areas with poor air quality?",
	"Do you experience difficulty breathing at night?",
}

// IsRecognizedQuestion 判断问题是否在识别集合内
func IsRecognizedQuestion(question string) bool {
	for _, q := range RecognizedQuestions {
		if q == question {
			return true
		}
	}
	return false
}

// QuizResponse 问卷回答（对应 quiz_responses 表）
// 同一 (user, question) 可累积多行，重复提交不去重
type QuizResponse struct {
	ResponseID int64  `db:"response_id"`
	UserID     int64  `db:"user_id"` // FK users
	Question   string `db:"question"`
	Answer     string `db:"answer"`
}
