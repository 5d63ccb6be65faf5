package view

import (
	"docket-cli/internal/model"
	"docket-cli/internal/msg"
)

// Node ids the driver looks up.
const (
	IDOverlay     = "overlay"
	IDTitle       = "overlay.title"
	IDDescription = "overlay.description"
	IDSave        = "overlay.save"
	IDCancel      = "overlay.cancel"
	IDClose       = "overlay.close"
	IDList        = "list"

	entryIDPrefix = "entry:"
)

// EntryNodeID is the id of the card projected for entry id.
func EntryNodeID(id model.ID) string { return entryIDPrefix + string(id) }

// Project maps s to its display tree. It reads s only.
func Project(s model.State) Node {
	return Node{
		Kind: KindRoot,
		Children: []Node{
			{Kind: KindHeading, Text: "Home page"},
			projectOverlay(s.OverlayVisible),
			projectList(s),
		},
	}
}

// The overlay is always part of the tree; visibility is carried by Hidden.
func projectOverlay(visible bool) Node {
	return Node{
		ID:     IDOverlay,
		Kind:   KindOverlay,
		Hidden: !visible,
		Children: []Node{
			{ID: IDTitle, Kind: KindInput, Placeholder: "Title"},
			{ID: IDDescription, Kind: KindTextArea, Placeholder: "Description"},
			{ID: IDSave, Kind: KindButton, Text: "Save", OnActivate: msg.CreateTodo{}},
			{ID: IDCancel, Kind: KindButton, Text: "Cancel", OnActivate: msg.ToggleOverlay{Visible: false}},
			{ID: IDClose, Kind: KindButton, Label: "close", OnActivate: msg.ToggleOverlay{Visible: false}},
		},
	}
}

func projectList(s model.State) Node {
	list := Node{ID: IDList, Kind: KindList}
	if len(s.Entries) == 0 {
		return list
	}
	list.Children = make([]Node, 0, len(s.Entries))
	for _, e := range s.Entries {
		list.Children = append(list.Children, projectEntry(e))
	}
	return list
}

// projectEntry shows the name and details only. Status, category and
// children are carried by the entry but not displayed.
func projectEntry(e model.Entry) Node {
	return Node{
		ID:   EntryNodeID(e.ID),
		Kind: KindCard,
		Children: []Node{
			{Kind: KindTitle, Text: e.Name},
			{Kind: KindBody, Text: e.Details},
		},
	}
}
