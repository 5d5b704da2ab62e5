// Package ui bridges the item store and the human user: it holds the
// presentation state (sort mode, open overlays, pending confirmation),
// validates form input, and turns store snapshots into rendered views
// pushed to a Surface.
package ui

import (
	"strings"

	costperuse "github.com/pastor0711/Cost-Per-Use"
	"github.com/pastor0711/Cost-Per-Use/i18n"
	"github.com/pastor0711/Cost-Per-Use/renderer"
)

// Overlay is the mutually-exclusive overlay state of the view.
type Overlay int

const (
	// OverlayNone shows the plain item list.
	OverlayNone Overlay = iota
	// OverlayForm shows the add/edit form.
	OverlayForm
	// OverlayDetail shows a single item's detail view.
	OverlayDetail
)

// Surface is the adapter from rendered view-models to actual UI primitives,
// whatever the target platform uses for them.
type Surface interface {
	// Render replaces the whole surface with the given view.
	Render(view string)
	// Update applies a targeted, minimal refresh without a full render.
	Update(view string)
}

// FormInput is the raw, not-yet-validated content of the add/edit form.
type FormInput struct {
	Name     string
	Price    string
	Resale   string
	Category string
}

// Controller drives the presentation. It owns no item state: every mutation
// goes through the injected Inventory, and every render starts from a fresh
// store snapshot.
type Controller struct {
	inv     *costperuse.Inventory
	tr      *i18n.Translator
	surface Surface

	sort    costperuse.SortMode
	overlay Overlay

	form   renderer.FormView
	editID string // item being edited, empty in add mode

	detailID string

	// the confirm layer stacks on top of the current overlay; at most one
	// pending action exists, arming a new one discards the previous
	confirmMessage string
	onConfirm      func() error

	cancelStore func()
	cancelI18n  func()
}

// New wires a controller to its store, translator and surface. It renders
// immediately and re-renders on every store or locale change until Close is
// called.
func New(inv *costperuse.Inventory, tr *i18n.Translator, surface Surface) *Controller {
	c := &Controller{inv: inv, tr: tr, surface: surface}
	c.cancelStore = inv.Subscribe(func([]costperuse.Item) { c.render() })
	c.cancelI18n = tr.Subscribe(func() { c.render() })
	return c
}

// Close cancels the controller's subscriptions. The controller must not be
// used afterwards.
func (c *Controller) Close() {
	c.cancelStore()
	c.cancelI18n()
}

// SortMode returns the active display sort.
func (c *Controller) SortMode() costperuse.SortMode { return c.sort }

// SetSortMode switches the display sort and re-renders. Sorting is derived
// at render time; the store order is untouched.
func (c *Controller) SetSortMode(mode costperuse.SortMode) {
	c.sort = mode
	c.render()
}

// Overlay returns the current overlay state.
func (c *Controller) Overlay() Overlay { return c.overlay }

// render recomputes the current screen from a fresh snapshot and pushes it
// to the surface. The confirm layer, when armed, covers whatever overlay is
// below it.
func (c *Controller) render() {
	if c.onConfirm != nil {
		c.surface.Render(renderer.ConfirmMarkdown(c.confirmMessage, c.tr))
		return
	}
	switch c.overlay {
	case OverlayForm:
		c.surface.Render(renderer.FormMarkdown(c.form, c.tr))
	case OverlayDetail:
		if it, ok := c.inv.Get(c.detailID); ok {
			c.surface.Render(renderer.DetailMarkdown(it, c.tr))
			return
		}
		// the item vanished under us (deleted elsewhere): fall back to the list
		c.overlay = OverlayNone
		fallthrough
	default:
		items := costperuse.SortItems(c.inv.Items(), c.sort)
		c.surface.Render(renderer.ListMarkdown(items, c.sort, c.tr))
	}
}

// OpenForm opens the add form, empty.
func (c *Controller) OpenForm() {
	c.overlay = OverlayForm
	c.editID = ""
	c.form = renderer.FormView{}
	c.render()
}

// OpenEdit opens the form pre-filled with the given item. Unknown ids are a
// no-op.
func (c *Controller) OpenEdit(id string) {
	it, ok := c.inv.Get(id)
	if !ok {
		return
	}
	c.overlay = OverlayForm
	c.editID = it.ID
	c.form = renderer.FormView{
		Edit:     true,
		Name:     it.Name,
		Price:    it.Price.String(),
		Resale:   it.ResaleValue.String(),
		Category: it.Category,
	}
	c.render()
}

// CancelForm closes the form without saving.
func (c *Controller) CancelForm() {
	if c.overlay != OverlayForm {
		return
	}
	c.overlay = OverlayNone
	c.editID = ""
	c.render()
}

// SubmitForm validates the input and, when the gate passes, creates or
// updates the item and closes the form. A failed gate silently declines: no
// record is touched and the form stays open for correction. The returned
// bool reports whether the gate passed.
func (c *Controller) SubmitForm(in FormInput) (bool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Price) == "" {
		c.form.Name, c.form.Price, c.form.Resale, c.form.Category = in.Name, in.Price, in.Resale, in.Category
		return false, nil
	}

	var err error
	if c.editID != "" {
		price := costperuse.ParseAmount(in.Price)
		resale := costperuse.ParseAmount(in.Resale)
		category := in.Category
		err = c.inv.Update(c.editID, costperuse.ItemPatch{
			Name:        &name,
			Price:       &price,
			ResaleValue: &resale,
			Category:    &category,
		})
	} else {
		_, err = c.inv.Add(name, in.Price, in.Category, in.Resale)
	}
	if err != nil {
		return true, err
	}

	c.overlay = OverlayNone
	c.editID = ""
	c.form = renderer.FormView{}
	// the store notification already re-rendered the list
	return true, nil
}

// OpenDetail opens the detail view of the given item. Unknown ids are a
// no-op.
func (c *Controller) OpenDetail(id string) {
	if _, ok := c.inv.Get(id); !ok {
		return
	}
	c.overlay = OverlayDetail
	c.detailID = id
	c.render()
}

// CloseDetail closes the detail view.
func (c *Controller) CloseDetail() {
	if c.overlay != OverlayDetail {
		return
	}
	c.overlay = OverlayNone
	c.detailID = ""
	c.render()
}

// EditCurrent transitions from the detail view to the edit form for the
// displayed item.
func (c *Controller) EditCurrent() {
	if c.overlay == OverlayDetail {
		c.OpenEdit(c.detailID)
	}
}

// RequestConfirm arms the confirmation layer with a message and the action
// to run on confirm. Arming replaces any prior unexecuted action.
func (c *Controller) RequestConfirm(message string, action func() error) {
	c.confirmMessage = message
	c.onConfirm = action
	c.render()
}

// ConfirmPending reports whether a confirmation is awaiting an answer.
func (c *Controller) ConfirmPending() bool { return c.onConfirm != nil }

// Confirm runs the pending action and closes the confirmation layer. With
// no pending action it is a no-op.
func (c *Controller) Confirm() error {
	action := c.onConfirm
	c.onConfirm = nil
	c.confirmMessage = ""
	if action == nil {
		return nil
	}
	return action()
}

// CancelConfirm discards the pending action.
func (c *Controller) CancelConfirm() {
	c.onConfirm = nil
	c.confirmMessage = ""
	c.render()
}

// RequestDeleteCurrent asks for confirmation before deleting the item shown
// in the detail view. Deletion is the one destructive operation, so it
// always goes through the confirm layer.
func (c *Controller) RequestDeleteCurrent() {
	if c.overlay != OverlayDetail {
		return
	}
	id := c.detailID
	c.RequestConfirm(c.tr.T("confirmDeletePermanent"), func() error {
		if err := c.inv.Delete(id); err != nil {
			return err
		}
		c.overlay = OverlayNone
		c.detailID = ""
		return nil
	})
}

// UseItem records one use through the silent store path and applies a
// targeted single-card refresh instead of re-rendering the whole list.
func (c *Controller) UseItem(id string) error {
	if err := c.inv.IncrementUse(id, true); err != nil {
		return err
	}
	if it, ok := c.inv.Get(id); ok {
		c.surface.Update(renderer.ItemCardMarkdown(it, c.tr))
	}
	return nil
}

// Export renders the full collection snapshot in the given format.
func (c *Controller) Export(format costperuse.ExportFormat) (costperuse.ExportFile, error) {
	return costperuse.Export(c.inv.Items(), format, c.tr)
}

// ShowSettings renders the settings view on the surface.
func (c *Controller) ShowSettings() {
	c.surface.Render(renderer.SettingsMarkdown(c.tr))
}
