package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/api"
	"kgeyst.com/makereal/pkg/makereal/domain"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/inmemory"
)

const help = `commands:
  add <kind> <x> <y> <w> <h> [text]           adds a top-level shape
  child <parent> <kind> <x> <y> <w> <h> [text] adds a shape inside another one
  select <id>...  selectall  selectnone
  list                                         lists all shapes
  show <id>                                    previews a generated page
  previous                                     prints the HTML of the selected previous response
  makereal                                     generates a page out of the selection (in the background)
  load <file>  save <file>                     reads/writes a canvas document
  source <file>                                runs commands from a file
  quit`

type console struct {
	config   *common.Config
	logger   common.Logger
	out      io.Writer
	jobQueue *common.JobQueue
	canvas   *inmemory.Canvas
	makeReal api.API
}

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfigOrDefault("config.yaml")
	if err != nil {
		return err
	}
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	jobQueue := common.NewJobQueue(logger)
	defer jobQueue.Stop()
	c := &console{
		config:   config,
		logger:   logger,
		out:      rl.Stdout(),
		jobQueue: jobQueue,
	}
	err = c.setCanvas(inmemory.NewCanvas())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, help)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or Ctrl+C
			break
		}
		quit, err := c.execute(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "error:", err)
		}
		if quit {
			break
		}
	}
	return nil
}

func (c *console) setCanvas(canvas *inmemory.Canvas) error {
	makeReal, err := api.NewAPIWithLogger(c.config, canvas, c.logger)
	if err != nil {
		return err
	}
	c.canvas = canvas
	c.makeReal = makeReal
	return nil
}

func (c *console) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	args := fields[1:]
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(c.out, help)
	case "add":
		return false, c.add("", args)
	case "child":
		if len(args) < 1 {
			return false, errors.New("usage: child <parent> <kind> <x> <y> <w> <h> [text]")
		}
		parentID, err := c.resolveID(args[0])
		if err != nil {
			return false, err
		}
		return false, c.add(parentID, args[1:])
	case "select":
		ids := make([]domain.ShapeID, 0, len(args))
		for _, arg := range args {
			id, err := c.resolveID(arg)
			if err != nil {
				return false, err
			}
			ids = append(ids, id)
		}
		return false, c.canvas.Select(ids...)
	case "selectall":
		c.canvas.SelectAll()
	case "selectnone":
		c.canvas.SelectNone()
	case "list":
		c.list()
	case "show":
		if len(args) != 1 {
			return false, errors.New("usage: show <id>")
		}
		return false, c.show(args[0])
	case "previous":
		html, found, err := c.makeReal.PreviousResponse()
		if err != nil {
			return false, err
		}
		if !found {
			fmt.Fprintln(c.out, "no previous response selected")
			return false, nil
		}
		fmt.Fprintln(c.out, html)
	case "makereal":
		c.enqueueMakeReal()
	case "load":
		if len(args) != 1 {
			return false, errors.New("usage: load <file>")
		}
		canvas, err := inmemory.LoadDocument(args[0])
		if err != nil {
			return false, err
		}
		return false, c.setCanvas(canvas)
	case "save":
		if len(args) != 1 {
			return false, errors.New("usage: save <file>")
		}
		data, err := c.canvas.MarshalDocument()
		if err != nil {
			return false, err
		}
		return false, os.WriteFile(args[0], data, 0644)
	case "source":
		if len(args) != 1 {
			return false, errors.New("usage: source <file>")
		}
		return c.source(args[0])
	default:
		return false, errors.Errorf("unknown command '%s' (try 'help')", fields[0])
	}
	return false, nil
}

func (c *console) add(parentID domain.ShapeID, args []string) error {
	if len(args) < 5 {
		return errors.New("usage: add <kind> <x> <y> <w> <h> [text]")
	}
	kind := args[0]
	if !common.IsStringInSlice(kind, domain.ShapeKindNames()) {
		return errors.Errorf("unknown shape kind '%s', expected one of: %s", kind, strings.Join(domain.ShapeKindNames(), ", "))
	}
	var numbers [4]float64
	for i := range numbers {
		number, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return errors.Wrapf(err, "invalid coordinate '%s'", args[i+1])
		}
		numbers[i] = number
	}
	text := strings.Join(args[5:], " ")
	text = common.RemoveDoubleQuotesIfAny(text)
	text = common.RemoveSingleQuotesIfAny(text)
	text = strings.ReplaceAll(text, `\n`, "\n")
	id := c.canvas.CreateShapeID()
	err := c.canvas.CreateShape(domain.Shape{
		ID:       id,
		Kind:     domain.ShapeKind(kind),
		X:        numbers[0],
		Y:        numbers[1],
		W:        numbers[2],
		H:        numbers[3],
		ParentID: parentID,
		Text:     text,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, id)
	return nil
}

func (c *console) list() {
	selected := c.canvas.GetSelectedShapeIDs()
	for _, shape := range c.canvas.Shapes() {
		marker := " "
		for _, id := range selected {
			if id == shape.ID {
				marker = "*"
			}
		}
		line := fmt.Sprintf("%s %s %-8s (%g, %g, %g x %g)", marker, shape.ID, shape.Kind, shape.X, shape.Y, shape.W, shape.H)
		if shape.ParentID != "" {
			line += " in " + string(shape.ParentID)
		}
		if shape.Text != "" {
			line += fmt.Sprintf(" %q", shape.Text)
		}
		if shape.Kind == domain.ShapeKindResponse {
			if shape.HTML == "" {
				line += " [generating...]"
			} else {
				line += fmt.Sprintf(" [%d bytes of html]", len(shape.HTML))
			}
		}
		fmt.Fprintln(c.out, line)
	}
}

func (c *console) show(arg string) error {
	id, err := c.resolveID(arg)
	if err != nil {
		return err
	}
	preview, err := c.makeReal.Preview(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "title: %s\ntext: %s\n", preview.Title, preview.Text)
	for _, link := range preview.Links {
		fmt.Fprintf(c.out, "link: %s\n", link)
	}
	return nil
}

// Runs on the job queue, one generation at a time.
func (c *console) enqueueMakeReal() {
	makeReal := c.makeReal
	c.jobQueue.Enqueue("makereal", func() error {
		id, err := makeReal.MakeReal(context.Background())
		if err != nil {
			fmt.Fprintln(c.out, "makereal failed:", err)
			return err
		}
		fmt.Fprintf(c.out, "makereal done: %s (try 'show %s')\n", id, id)
		return nil
	})
	fmt.Fprintln(c.out, "generating...")
}

func (c *console) source(path string) (bool, error) {
	lines, err := common.ReadAllLines(path)
	if err != nil {
		return false, err
	}
	for index, line := range lines {
		quit, err := c.execute(strings.TrimSpace(line))
		if err != nil {
			return false, errors.Wrapf(err, "%s:%d", path, index+1)
		}
		if quit {
			return true, nil
		}
	}
	return false, nil
}

// Full IDs are long, so any unique suffix or prefix of the UUID part works too.
func (c *console) resolveID(arg string) (domain.ShapeID, error) {
	if c.canvas.GetShape(domain.ShapeID(arg)) != nil {
		return domain.ShapeID(arg), nil
	}
	var found []domain.ShapeID
	for _, shape := range c.canvas.Shapes() {
		uuidPart := strings.TrimPrefix(string(shape.ID), "shape:")
		if strings.HasPrefix(uuidPart, arg) || strings.HasSuffix(uuidPart, arg) {
			found = append(found, shape.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", errors.Errorf("no shape matches '%s'", arg)
	case 1:
		return found[0], nil
	default:
		return "", errors.Errorf("'%s' is ambiguous", arg)
	}
}
