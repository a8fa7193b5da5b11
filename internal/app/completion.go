// Where: internal/app/completion.go
// What: Shell completion command implementation.
// Why: Provide tab completion for bash, zsh, and fish.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ucmctl/ucm/internal/envspec"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

// topLevelCommands lists the visible commands from the kong model.
func topLevelCommands(cli CLI) []string {
	parser, err := kong.New(&cli)
	if err != nil {
		return nil
	}

	var commands []string
	for _, node := range parser.Model.Children {
		if node.Hidden || strings.HasPrefix(node.Name, "__") {
			continue
		}
		commands = append(commands, node.Name)
	}
	return commands
}

func environmentWords() string {
	return strings.Join(append(envspec.Known(), "all"), " ")
}

func runCompletionBash(cli CLI, out io.Writer) int {
	script := `_ucm_completions() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
        switch|stop)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
        env)
            COMPREPLY=( $(compgen -W "list show" -- "${cur}") )
            return 0
            ;;
        show)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
    fi
}
complete -F _ucm_completions ucm
`
	fmt.Fprintf(out, script,
		environmentWords(),
		strings.Join(envspec.Known(), " "),
		strings.Join(topLevelCommands(cli), " "))
	return 0
}

func runCompletionZsh(cli CLI, out io.Writer) int {
	script := `#compdef ucm

_ucm() {
    local -a commands environments
    commands=(%s)
    environments=(%s all)

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case "${words[2]}" in
        switch|stop)
            _describe 'environment' environments
            ;;
        completion)
            compadd bash zsh fish
            ;;
        env)
            compadd list show
            ;;
    esac
}

_ucm "$@"
`
	fmt.Fprintf(out, script,
		strings.Join(topLevelCommands(cli), " "),
		strings.Join(envspec.Known(), " "))
	return 0
}

func runCompletionFish(cli CLI, out io.Writer) int {
	for _, command := range topLevelCommands(cli) {
		fmt.Fprintf(out, "complete -c ucm -n '__fish_use_subcommand' -a %s\n", command)
	}
	fmt.Fprintf(out, "complete -c ucm -n '__fish_seen_subcommand_from switch stop' -a '%s'\n", environmentWords())
	fmt.Fprintln(out, "complete -c ucm -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'")
	fmt.Fprintln(out, "complete -c ucm -n '__fish_seen_subcommand_from env' -a 'list show'")
	return 0
}
