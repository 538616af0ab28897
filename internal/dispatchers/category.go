package dispatchers

type CommandCategory int

const (
	CategoryGeneral CommandCategory = iota
	CategoryFile                    // Loading, saving, versions
	CategoryEdit                    // Editing axes
	CategoryView                    // Viewing axes
	CategoryPreferences             // Session preferences
	CategorySystem                  // Help, quit, navigation
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryFile:
		return "file operations"
	case CategoryEdit:
		return "editing"
	case CategoryView:
		return "viewing"
	case CategoryPreferences:
		return "session preferences"
	case CategorySystem:
		return "system"
	default:
		return "general"
	}
}

var categoryOrder = []CommandCategory{
	CategoryFile,
	CategoryEdit,
	CategoryView,
	CategoryPreferences,
	CategorySystem,
	CategoryGeneral,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
