package vfs

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

// NodeSpec describes one node of the declarative tree document.
// Directories carry Children, files carry base64 Content.
type NodeSpec struct {
	Type     string               `json:"type" validate:"required,oneof=dir file"`
	Owner    string               `json:"owner,omitempty"`
	Mode     string               `json:"mode,omitempty"`
	Content  string               `json:"content,omitempty"`
	Children map[string]*NodeSpec `json:"children,omitempty" validate:"dive"`
}

// Document is the top-level tree description a VFS is built from.
type Document struct {
	Name string    `json:"name,omitempty"`
	Root *NodeSpec `json:"root" validate:"required"`
}

// Validate checks the document for basic semantic errors.
func (d *Document) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(d)
}

// ParseDocument decodes a JSON (or YAML) document and validates it.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// InvalidDocumentError reports a malformed tree description.
type InvalidDocumentError struct {
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return "invalid VFS document: " + e.Reason
}

// Tree pairs a root node with the label shown in the prompt. The label
// is display metadata, not part of the tree structure.
type Tree struct {
	Root  *Node
	Label string
}

// EmptyTree returns a tree holding a single empty root directory, used
// when no document is supplied or loading one fails.
func EmptyTree() *Tree {
	return &Tree{Root: NewDir(Separator), Label: DefaultLabel}
}

// Build constructs the full tree from a document. The synthetic root
// node is named after the separator itself.
func Build(doc *Document) (*Tree, error) {
	if doc == nil || doc.Root == nil {
		return nil, &InvalidDocumentError{Reason: "missing 'root' object"}
	}

	label := doc.Name
	if label == "" {
		label = DefaultLabel
	}

	root, err := buildNode(Separator, doc.Root)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root, Label: label}, nil
}

func buildNode(name string, spec *NodeSpec) (*Node, error) {
	owner := spec.Owner
	if owner == "" {
		owner = DefaultOwner
	}
	mode := spec.Mode
	if mode == "" {
		mode = DefaultMode
	}

	switch spec.Type {
	case "dir":
		node := &Node{
			Name:     name,
			Kind:     Dir,
			Owner:    owner,
			Mode:     mode,
			Children: make(map[string]*Node, len(spec.Children)),
		}
		for childName, childSpec := range spec.Children {
			child, err := buildNode(childName, childSpec)
			if err != nil {
				return nil, err
			}
			node.Children[childName] = child
		}
		return node, nil

	case "file":
		var content []byte
		if spec.Content != "" {
			decoded, err := base64.StdEncoding.DecodeString(spec.Content)
			if err != nil {
				return nil, &InvalidDocumentError{
					Reason: fmt.Sprintf("bad base64 content for file %s: %v", name, err),
				}
			}
			content = decoded
		}
		return &Node{
			Name:    name,
			Kind:    File,
			Owner:   owner,
			Mode:    mode,
			Content: content,
		}, nil

	default:
		return nil, &InvalidDocumentError{
			Reason: fmt.Sprintf("invalid node type %q for %s", spec.Type, name),
		}
	}
}
