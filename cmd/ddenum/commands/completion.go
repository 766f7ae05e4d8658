package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:
  $ source <(ddenum completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ddenum completion bash > /etc/bash_completion.d/ddenum
  # macOS:
  $ ddenum completion bash > /usr/local/etc/bash_completion.d/ddenum

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ddenum completion zsh > "${fpath[1]}/_ddenum"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ ddenum completion fish | source

  # To load completions for each session, execute once:
  $ ddenum completion fish > ~/.config/fish/completions/ddenum.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			fmt.Print(humanBashCompletion)
		case "zsh":
			rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			rootCmd.GenPowerShellCompletion(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// humanBashCompletion is a handcrafted, minimal bash completion script
// that avoids the robotic verbosity of auto-generated ones.
const humanBashCompletion = `
# ddenum bash completion

_ddenum_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="endpoints update completion help"

    case "${prev}" in
        endpoints)
            COMPREPLY=( $(compgen -W "--help" -- ${cur}) )
            return 0
            ;;
        update)
             COMPREPLY=( $(compgen -W "--help" -- ${cur}) )
             return 0
             ;;
        completion)
             COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- ${cur}) )
             return 0
             ;;
        --region|-r)
             local regions="us1 us3 us5 eu ap1"
             COMPREPLY=( $(compgen -W "${regions}" -- ${cur}) )
             return 0
             ;;
        *)
            ;;
    esac

    # Global Flags
    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--help --version --region --verbose --json --json-logs --no-color" -- ${cur}) )
        return 0
    fi

    # Subcommands
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
}

complete -F _ddenum_completion ddenum
`
