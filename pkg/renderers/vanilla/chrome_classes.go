package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassForm       ChromeClass = "contacts-form"
	ClassErrors     ChromeClass = "contacts-errors"
	ClassActions    ChromeClass = "contacts-actions"
	ClassList       ChromeClass = "list-group"
	ClassListItem   ChromeClass = "list-group-item"
	ClassActionType ChromeClass = "action-type"
	ClassSrOnly     ChromeClass = "sr-only"
)

// chromeClasses exposes the classes to templates by short key.
func chromeClasses() map[string]string {
	return map[string]string{
		"form":        string(ClassForm),
		"errors":      string(ClassErrors),
		"actions":     string(ClassActions),
		"list":        string(ClassList),
		"item":        string(ClassListItem),
		"action_type": string(ClassActionType),
		"sr_only":     string(ClassSrOnly),
	}
}
