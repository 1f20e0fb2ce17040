package models

type Term string

const (
	TermFall   Term = "Fall"
	TermWinter Term = "Winter"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
	TermYear   Term = "Year"
)

var validTerms = map[Term]bool{
	TermFall: true, TermWinter: true, TermSpring: true, TermSummer: true, TermYear: true,
}

func (t Term) IsValid() bool { return validTerms[t] }

type Delivery string

const (
	DeliveryInPerson Delivery = "In-Person"
	DeliveryOnline   Delivery = "Online"
	DeliveryHybrid   Delivery = "Hybrid"
)

var validDeliveries = map[Delivery]bool{
	DeliveryInPerson: true, DeliveryOnline: true, DeliveryHybrid: true,
}

func (d Delivery) IsValid() bool { return validDeliveries[d] }

type Textbook string

const (
	TextbookYes      Textbook = "Yes"
	TextbookNo       Textbook = "No"
	TextbookOptional Textbook = "Optional"
)

var validTextbooks = map[Textbook]bool{
	TextbookYes: true, TextbookNo: true, TextbookOptional: true,
}

func (t Textbook) IsValid() bool { return validTextbooks[t] }

type Workload string

const (
	WorkloadVeryLight Workload = "Very Light"
	WorkloadLight     Workload = "Light"
	WorkloadModerate  Workload = "Moderate"
	WorkloadHeavy     Workload = "Heavy"
	WorkloadVeryHeavy Workload = "Very Heavy"
)

var validWorkloads = map[Workload]bool{
	WorkloadVeryLight: true, WorkloadLight: true, WorkloadModerate: true,
	WorkloadHeavy: true, WorkloadVeryHeavy: true,
}

func (w Workload) IsValid() bool { return validWorkloads[w] }

type Evaluation string

const (
	EvaluationAttendanceHeavy    Evaluation = "Attendance Heavy"
	EvaluationParticipationHeavy Evaluation = "Participation Heavy"
	EvaluationAssignmentHeavy    Evaluation = "Assignment Heavy"
	EvaluationQuizHeavy          Evaluation = "Quiz Heavy"
	EvaluationEssayHeavy         Evaluation = "Essay Heavy"
	EvaluationProjectHeavy       Evaluation = "Project Heavy"
	EvaluationLabHeavy           Evaluation = "Lab Heavy"
	EvaluationExamHeavy          Evaluation = "Exam Heavy"
)

var validEvaluations = map[Evaluation]bool{
	EvaluationAttendanceHeavy: true, EvaluationParticipationHeavy: true,
	EvaluationAssignmentHeavy: true, EvaluationQuizHeavy: true,
	EvaluationEssayHeavy: true, EvaluationProjectHeavy: true,
	EvaluationLabHeavy: true, EvaluationExamHeavy: true,
}

func (e Evaluation) IsValid() bool { return validEvaluations[e] }

type Grade string

const (
	GradeAPlus          Grade = "A+"
	GradeA              Grade = "A"
	GradeAMinus         Grade = "A-"
	GradeBPlus          Grade = "B+"
	GradeB              Grade = "B"
	GradeBMinus         Grade = "B-"
	GradeCPlus          Grade = "C+"
	GradeC              Grade = "C"
	GradeCMinus         Grade = "C-"
	GradeDPlus          Grade = "D+"
	GradeD              Grade = "D"
	GradeDMinus         Grade = "D-"
	GradeF              Grade = "F"
	GradeDropWithdrawal Grade = "Drop/Withdrawal"
	GradeIncomplete     Grade = "Incomplete"
	GradeNotSureYet     Grade = "Not sure yet"
	GradeRatherNotSay   Grade = "Rather not say"
	GradeAuditNoGrade   Grade = "Audit/No Grade"
	GradePass           Grade = "Pass"
	GradeFail           Grade = "Fail"
)

var validGrades = map[Grade]bool{
	GradeAPlus: true, GradeA: true, GradeAMinus: true,
	GradeBPlus: true, GradeB: true, GradeBMinus: true,
	GradeCPlus: true, GradeC: true, GradeCMinus: true,
	GradeDPlus: true, GradeD: true, GradeDMinus: true,
	GradeF: true, GradeDropWithdrawal: true, GradeIncomplete: true,
	GradeNotSureYet: true, GradeRatherNotSay: true, GradeAuditNoGrade: true,
	GradePass: true, GradeFail: true,
}

func (g Grade) IsValid() bool { return validGrades[g] }

type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

func (v VoteType) IsValid() bool { return v == VoteUp || v == VoteDown }

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) IsValid() bool {
	return s == ReportPending || s == ReportResolved || s == ReportDismissed
}

type ReportEntityType string

const (
	EntityCourse ReportEntityType = "course"
	EntityReview ReportEntityType = "review"
)

func (t ReportEntityType) IsValid() bool { return t == EntityCourse || t == EntityReview }

type AccountType string

const (
	AccountAnonymous AccountType = "anonymous"
	AccountStudent   AccountType = "student"
	AccountUser      AccountType = "user"
	AccountOwner     AccountType = "owner"
	AccountAdmin     AccountType = "admin"
)
