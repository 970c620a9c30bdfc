package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"livechat/internal/chat"
	"livechat/internal/server"
	"livechat/internal/tui"
)

const (
	version = "1.0.0"
	repoURL = "https://github.com/anto254/livechat"
)

func applyEnvOverrides(cfg *chat.Config) {
	if v := os.Getenv("LIVECHAT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LIVECHAT_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("LIVECHAT_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
}

func loadConfig(cmd *cobra.Command) (chat.Config, error) {
	cfg, err := chat.LoadConfig(chat.DefaultConfigPath())
	if err != nil {
		return cfg, err
	}
	applyEnvOverrides(&cfg)
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

func generateCompletion(shell string) error {
	switch shell {
	case "bash":
		fmt.Println("# bash completion for livechat")
		fmt.Println("_livechat_completions() {")
		fmt.Println("    local cur")
		fmt.Println("    COMPREPLY=()")
		fmt.Println("    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
		fmt.Println("    if [[ $COMP_CWORD -eq 1 ]]; then")
		fmt.Println("        COMPREPLY=( $(compgen -W \"serve id completion help --base-url --version\" -- \"${cur}\") )")
		fmt.Println("    fi")
		fmt.Println("    return 0")
		fmt.Println("}")
		fmt.Println("complete -F _livechat_completions livechat")
	case "zsh":
		fmt.Println("# zsh completion for livechat")
		fmt.Println("compdef _livechat livechat")
		fmt.Println("_livechat() {")
		fmt.Println("    _arguments -C \\")
		fmt.Println("        '(-h --help)'{-h,--help}'[show help]' \\")
		fmt.Println("        '(-v --version)'{-v,--version}'[print version]' \\")
		fmt.Println("        '--base-url[backend base URL]' \\")
		fmt.Println("        '1:command:(serve id completion help)'")
		fmt.Println("}")
	case "fish":
		fmt.Println("# fish completion for livechat")
		fmt.Println("complete -c livechat -f -a 'serve id completion help'")
		fmt.Println("complete -c livechat -s h -l help -d 'Show help'")
		fmt.Println("complete -c livechat -s v -l version -d 'Print version'")
		fmt.Println("complete -c livechat -l base-url -d 'Backend base URL'")
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:     "livechat",
		Short:   "Terminal live-chat support widget",
		Long:    "livechat is a terminal support-chat widget. It keeps an anonymous visitor identity, polls the backend for new messages and raises notifications while the panel is closed.\n\nRun without arguments to open the widget, or use 'livechat serve' to run the backend.\n\nFor more information, visit: " + repoURL,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Printf("livechat v%s\n", version)
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := chat.NewFileLogger(cfg.LogFile)
			clientID := chat.EnsureIdentity(cfg.StateDir, logger)
			client := chat.NewClient(cfg.BaseURL)
			sess := chat.NewSession()

			p := tea.NewProgram(
				tui.New(cfg, client, sess, clientID, logger),
				tea.WithAltScreen(),
				tea.WithReportFocus(),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.Flags().String("base-url", "", "backend base URL (overrides config)")
	root.Flags().BoolP("version", "v", false, "Print version information")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the livechat backend",
		Long:  "Run the HTTP backend the widget polls: GET /chat/{clientId}, POST /chat, backed by a local sqlite database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if v, _ := cmd.Flags().GetString("listen"); v != "" {
				cfg.ListenAddr = v
			}
			if v, _ := cmd.Flags().GetString("db"); v != "" {
				cfg.DBPath = v
			}

			if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
				return err
			}
			store, err := server.OpenStore(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			logger := chat.NewLogger(os.Stdout)
			handler := server.NewHandler(store, logger)

			logger.Info("listening", map[string]interface{}{"addr": cfg.ListenAddr, "db": cfg.DBPath})
			return http.ListenAndServe(cfg.ListenAddr, server.NewRouter(handler))
		},
	}
	serveCmd.Flags().String("listen", "", "listen address (overrides config)")
	serveCmd.Flags().String("db", "", "sqlite database path (overrides config)")
	root.AddCommand(serveCmd)

	idCmd := &cobra.Command{
		Use:   "id",
		Short: "Print the anonymous client identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := chat.NewFileLogger(cfg.LogFile)
			fmt.Println(chat.EnsureIdentity(cfg.StateDir, logger))
			return nil
		},
	}
	root.AddCommand(idCmd)

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion",
		Long:  "Generate shell completion script for livechat.\n\nExamples:\n  - livechat completion bash >> ~/.bashrc\n  - livechat completion zsh > ~/.zsh/completion/_livechat\n  - livechat completion fish > ~/.config/fish/completions/livechat.fish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCompletion(args[0])
		},
	}
	root.AddCommand(completionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
