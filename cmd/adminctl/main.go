// Command adminctl drives the blog admin API from the terminal: list, get,
// create, update, patch, and delete any entity resource, with JSON bodies
// read from a file or stdin and responses printed as indented JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/monjurmorshed793/banbeis-blog/internal/client"
)

// document is a schemaless entity representation: the CLI passes JSON
// through untouched and only needs the identifier.
type document map[string]any

func (d document) GetID() string {
	id, _ := d["id"].(string)
	return id
}

const usage = `Usage: adminctl [-base-url URL] [-token TOKEN] <resource> <command> [args]

Resources are plural path segments, e.g. divisions, districts, upazilas,
centers, center-images, center-employees, designations, employees,
navigations, posts, post-comments, post-photos.

Commands:
  list    [-page N] [-page-size N] [-sort field:dir] [-filter key=value]...
  get     <id>
  create  [-f body.json]       (reads stdin when -f is omitted)
  update  <id> [-f body.json]
  patch   <id> [-f body.json]
  delete  <id>
`

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	token := flag.String("token", "", "bearer token for authenticated APIs")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	opts := []client.Option{}
	if *token != "" {
		opts = append(opts, client.WithToken(*token))
	}
	res := client.NewResource[document](client.New(*baseURL, opts...), args[0])

	if err := run(context.Background(), res, args[1], args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, res *client.Resource[document], command string, args []string) error {
	switch command {
	case "list":
		return runList(ctx, res, args)
	case "get":
		return runGet(ctx, res, args)
	case "create":
		return runCreate(ctx, res, args)
	case "update":
		return runUpdate(ctx, res, args)
	case "patch":
		return runPatch(ctx, res, args)
	case "delete":
		return runDelete(ctx, res, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

type filterFlags map[string]string

func (f filterFlags) String() string { return "" }

func (f filterFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("filter must be key=value, got %q", value)
	}
	f[key] = val
	return nil
}

func runList(ctx context.Context, res *client.Resource[document], args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	pageSize := fs.Int("page-size", 0, "items per page")
	sort := fs.String("sort", "", "sort as field:asc or field:desc")
	filters := filterFlags{}
	fs.Var(filters, "filter", "filter as key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, total, err := res.QueryPage(ctx, client.QueryOptions{
		Page:     *page,
		PageSize: *pageSize,
		Sort:     *sort,
		Filters:  filters,
	})
	if err != nil {
		return err
	}

	if err := printJSON(items); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "total: %d\n", total)
	return nil
}

func runGet(ctx context.Context, res *client.Resource[document], args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get needs exactly one id")
	}
	entity, err := res.Find(ctx, args[0])
	if err != nil {
		return err
	}
	if entity == nil {
		return fmt.Errorf("not found: %s", args[0])
	}
	return printJSON(entity)
}

func runCreate(ctx context.Context, res *client.Resource[document], args []string) error {
	body, err := readBody("create", args)
	if err != nil {
		return err
	}
	created, err := res.Create(ctx, &body)
	if err != nil {
		return err
	}
	return printJSON(created)
}

func runUpdate(ctx context.Context, res *client.Resource[document], args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("update needs an id")
	}
	body, err := readBody("update", args[1:])
	if err != nil {
		return err
	}
	body["id"] = args[0]
	updated, err := res.Update(ctx, &body)
	if err != nil {
		return err
	}
	return printJSON(updated)
}

func runPatch(ctx context.Context, res *client.Resource[document], args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("patch needs an id")
	}
	body, err := readBody("patch", args[1:])
	if err != nil {
		return err
	}
	patched, err := res.PartialUpdate(ctx, args[0], body)
	if err != nil {
		return err
	}
	return printJSON(patched)
}

func runDelete(ctx context.Context, res *client.Resource[document], args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete needs exactly one id")
	}
	if err := res.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "deleted:", args[0])
	return nil
}

func readBody(command string, args []string) (document, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	path := fs.String("f", "", "JSON body file (stdin when omitted)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var raw []byte
	var err error
	if *path == "" || *path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(*path)
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var body document
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	return body, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
