package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/daskie/qc-hash-go"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "flatrepl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("flatrepl", flag.ContinueOnError)
	capacity := flags.IntP("capacity", "c", 0, "initial capacity hint")
	hasherName := flags.StringP("hasher", "H", "", "byte-key hasher: fasthash (default, bit-exact) or xxhash")
	configPath := flags.StringP("config", "f", defaultConfigPath(), "path to a hujson config file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", *configPath, err)
	}
	cfg = mergeFlags(cfg, *capacity, *hasherName, flags.Changed("hasher"))

	hash, err := hasherFor(cfg.Hasher)
	if err != nil {
		return err
	}

	var m *flathash.Map[string, string]
	if cfg.Capacity > 0 {
		m = flathash.NewMapWithCapacity[string, string](cfg.Capacity, hash)
	} else {
		m = flathash.NewMap[string, string](hash)
	}

	return (&repl{m: m}).run()
}

func hasherFor(name string) (flathash.Hasher[string], error) {
	switch name {
	case "", "fasthash":
		return flathash.HashStringSeed0, nil
	case "xxhash":
		return flathash.HashStringXXH64, nil
	default:
		return nil, fmt.Errorf("unknown hasher %q (want fasthash or xxhash)", name)
	}
}

type repl struct {
	m     *flathash.Map[string, string]
	liner *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.flatrepl_history"
}

func (r *repl) run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("flatrepl - flathash.Map CLI (%s)\n", r.m.Stats())
	fmt.Println("Type 'help' for available commands.")

	for {
		line, err := r.liner.Prompt("flatrepl> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")
				r.saveHistory()
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()
			return nil
		case "help", "?":
			r.printHelp()
		case "put":
			r.cmdPut(args)
		case "get":
			r.cmdGet(args)
		case "del", "delete":
			r.cmdDel(args)
		case "has":
			r.cmdHas(args)
		case "len", "count":
			fmt.Println(r.m.Len())
		case "stats":
			fmt.Println(r.m.Stats())
		case "rehash":
			r.cmdRehash(args)
		case "clear":
			r.m.Clear()
		case "dump":
			r.cmdDump(args)
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (r *repl) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.liner.WriteHistory(f)
			f.Close()
		}
	}
}

func (r *repl) completer(line string) []string {
	commands := []string{"put", "get", "del", "has", "len", "stats", "rehash", "clear", "dump", "help", "exit"}
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}

func (r *repl) printHelp() {
	fmt.Println(`put <key> <value>   Insert or update an entry
get <key>           Retrieve an entry by key
del <key>           Delete an entry
has <key>           Report whether a key is present
len                 Count live entries
stats               Show occupancy stats
rehash <n>          Force a rehash to at least n slots
clear               Remove every entry
dump <path>         Atomically snapshot all entries to a JSON file
help                Show this help
exit / quit / q     Exit`)
}

func (r *repl) cmdPut(args []string) {
	if len(args) < 2 {
		fmt.Println("usage: put <key> <value>")
		return
	}
	inserted := r.m.Put(args[0], strings.Join(args[1:], " "))
	if inserted {
		fmt.Println("inserted")
	} else {
		fmt.Println("updated")
	}
}

func (r *repl) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: get <key>")
		return
	}
	v, err := r.m.At(args[0])
	if err != nil {
		fmt.Println("(not found)")
		return
	}
	fmt.Println(v)
}

func (r *repl) cmdDel(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: del <key>")
		return
	}
	if r.m.Erase(args[0]) {
		fmt.Println("deleted")
	} else {
		fmt.Println("(not found)")
	}
}

func (r *repl) cmdHas(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: has <key>")
		return
	}
	fmt.Println(r.m.Contains(args[0]))
}

func (r *repl) cmdRehash(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: rehash <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("not a number:", args[0])
		return
	}
	r.m.Rehash(n)
	fmt.Printf("rehashed to %s slots\n", humanize.Comma(int64(r.m.SlotCount())))
}

func (r *repl) cmdDump(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: dump <path>")
		return
	}
	if err := dumpSession(args[0], r.m); err != nil {
		fmt.Println("dump failed:", err)
		return
	}
	fmt.Println("wrote", args[0])
}
