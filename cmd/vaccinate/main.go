// Command vaccinate loads a module by reference, injects its declared
// dependencies and invokes it, printing the result as YAML. With -list it
// shows the module references discoverable in the configured directories.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/CoefficientIO/vaccinate"
	"github.com/CoefficientIO/vaccinate/internal/config"
	"github.com/CoefficientIO/vaccinate/modfile"
	"github.com/CoefficientIO/vaccinate/registry"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	refStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

func main() {
	moduleRef := flag.String("module", "", "module reference to invoke (e.g. ./greeter)")
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	property := flag.String("property", "", "declaration property name override")
	list := flag.Bool("list", false, "list discoverable module references and exit")
	dirs := stringListFlag{}
	flag.Var(&dirs, "dir", "module base directory (repeatable, ordered)")
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	cfg, err := config.Load(project)
	if err != nil {
		die("load config: %v", err)
	}
	opts := vaccinate.Options{
		Property:   cfg.Property,
		ModuleDirs: cfg.ModuleDirs,
	}
	if *property != "" {
		opts.Property = *property
	}
	if len(dirs) > 0 {
		opts.ModuleDirs = dirs
	}

	if *list {
		if err := listModules(opts.ModuleDirs); err != nil {
			die("list modules: %v", err)
		}
		return
	}
	if strings.TrimSpace(*moduleRef) == "" {
		die("--module is required")
	}
	result, err := vaccinate.Resolve(*moduleRef, &opts)
	if err != nil {
		die("resolve %s: %v", *moduleRef, err)
	}
	fmt.Println(headerStyle.Render(*moduleRef))
	printResult(result)
}

func listModules(dirs []string) error {
	refs, err := modfile.Discover(dirs)
	if err != nil {
		return err
	}
	if len(refs) > 0 {
		fmt.Println(headerStyle.Render("modules"))
		for _, ref := range refs {
			fmt.Println("  " + refStyle.Render(ref))
		}
	}
	if names := registry.Default().Names(); len(names) > 0 {
		fmt.Println(headerStyle.Render("registry"))
		for _, name := range names {
			fmt.Println("  " + refStyle.Render(name))
		}
	}
	if len(refs) == 0 {
		fmt.Println("no modules found")
	}
	return nil
}

func printResult(result any) {
	out, err := yaml.Marshal(result)
	if err != nil {
		// Not everything round-trips through YAML (funcs, channels).
		fmt.Printf("%v\n", result)
		return
	}
	fmt.Print(string(out))
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

type stringListFlag []string

func (s *stringListFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringListFlag) Set(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("directory is empty")
	}
	*s = append(*s, trimmed)
	return nil
}
