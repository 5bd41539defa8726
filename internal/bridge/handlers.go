package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/ytget/file-grouper/internal/model"
	"github.com/ytget/file-grouper/internal/picker"
	"github.com/ytget/file-grouper/internal/platform"
)

// Handler names reachable from the UI shell
const (
	HandlerSelectFolder  = "select_folder"
	HandlerReadDirectory = "read_directory"
	HandlerOpenFile      = "open_file"
)

// ArgPath is the argument key for path-taking handlers
const ArgPath = "path"

// ErrNoPicker is returned by select_folder when no dialog is available
var ErrNoPicker = errors.New("folder selection is not available")

// Services are the operations behind the built-in handlers. Nil fields fall
// back to the platform package; a nil Picker disables select_folder.
type Services struct {
	Picker        picker.FolderPicker
	ReadDirectory func(path string) (*model.DirectoryListing, error)
	OpenFile      func(path string) error
}

// New creates a bridge with select_folder, read_directory and open_file
func New(svc Services) *Bridge {
	if svc.ReadDirectory == nil {
		svc.ReadDirectory = platform.ReadDirectory
	}
	if svc.OpenFile == nil {
		svc.OpenFile = platform.OpenFileWithDefaultApp
	}

	b := NewEmpty()

	b.Register(HandlerSelectFolder, func(ctx context.Context, _ gjson.Result) (any, error) {
		if svc.Picker == nil {
			return nil, ErrNoPicker
		}
		return svc.Picker.SelectFolder(ctx)
	})

	b.Register(HandlerReadDirectory, func(_ context.Context, args gjson.Result) (any, error) {
		path, err := requirePath(args)
		if err != nil {
			return nil, err
		}
		return svc.ReadDirectory(path)
	})

	b.Register(HandlerOpenFile, func(_ context.Context, args gjson.Result) (any, error) {
		path, err := requirePath(args)
		if err != nil {
			return nil, err
		}
		return nil, svc.OpenFile(path)
	})

	return b
}

func requirePath(args gjson.Result) (string, error) {
	value := args.Get(ArgPath)
	if !value.Exists() || value.Type != gjson.String {
		return "", fmt.Errorf("missing argument: %s", ArgPath)
	}
	return value.String(), nil
}

// SelectFolder invokes select_folder and decodes the path
func (b *Bridge) SelectFolder(ctx context.Context) (string, error) {
	data, err := b.Invoke(ctx, HandlerSelectFolder, nil)
	if err != nil {
		return "", err
	}
	var path string
	if err := json.Unmarshal(data, &path); err != nil {
		return "", &Error{Handler: HandlerSelectFolder, Message: err.Error()}
	}
	return path, nil
}

// ReadDirectory invokes read_directory and decodes the listing
func (b *Bridge) ReadDirectory(ctx context.Context, path string) (*model.DirectoryListing, error) {
	data, err := b.Invoke(ctx, HandlerReadDirectory, PathArgs(path))
	if err != nil {
		return nil, err
	}
	listing := model.NewDirectoryListing()
	if err := json.Unmarshal(data, listing); err != nil {
		return nil, &Error{Handler: HandlerReadDirectory, Message: err.Error()}
	}
	return listing, nil
}

// OpenFile invokes open_file
func (b *Bridge) OpenFile(ctx context.Context, path string) error {
	_, err := b.Invoke(ctx, HandlerOpenFile, PathArgs(path))
	return err
}
