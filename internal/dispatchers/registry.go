package dispatchers

// Registry is an ordered collection of commands, used by menus to assemble
// their children and by help to group them.
type Registry struct {
	commands []Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{}
	for _, cmd := range cmds {
		r.Register(cmd)
	}
	return r
}

// Register appends cmd. Commands are kept in registration order.
func (r *Registry) Register(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// Find returns the first registered command that matches input.
func (r *Registry) Find(input string) (Command, bool) {
	return Find(r.commands, input)
}

func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

func (r *Registry) Len() int {
	return len(r.commands)
}

// ByCategory groups visible commands following CategoryOrder. Empty
// categories are left out.
func (r *Registry) ByCategory() []CategoryGroup {
	buckets := make(map[CommandCategory][]Command)
	for _, cmd := range Visible(r.commands) {
		buckets[cmd.Category()] = append(buckets[cmd.Category()], cmd)
	}

	var groups []CategoryGroup
	for _, cat := range CategoryOrder() {
		if cmds, ok := buckets[cat]; ok {
			groups = append(groups, CategoryGroup{Category: cat, Commands: cmds})
		}
	}
	return groups
}

type CategoryGroup struct {
	Category CommandCategory
	Commands []Command
}
