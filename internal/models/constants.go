package models

// ============================================================================
// TASK BOARD
// ============================================================================

// TaskBoardID identifies the local task board. There is exactly one.
const TaskBoardID = "tasks"

// TaskBoardName is the display name of the local task board
const TaskBoardName = "Tarefas"

// DefaultPriority is assigned to tasks created without one
const DefaultPriority = PriorityMedium

// DefaultTaskStatus is the column new tasks land in
const DefaultTaskStatus = StatusPending

// ============================================================================
// FUNNELS
// ============================================================================

// DefaultStageNames are the stages of a funnel created without explicit stages
var DefaultStageNames = []string{
	"Prospecção",
	"Qualificação",
	"Proposta",
	"Negociação",
	"Fechamento",
}

// DefaultFunnelIcon and DefaultFunnelColor match the web dashboard defaults
const (
	DefaultFunnelIcon  = "💰"
	DefaultFunnelColor = "#EAB308"
)

// DefaultSourceChannel is shown for leads without a source channel
const DefaultSourceChannel = "Orgânico"

// ============================================================================
// LEADS
// ============================================================================

// DefaultLeadPageSize is the page size used when listing leads
const DefaultLeadPageSize = 10
