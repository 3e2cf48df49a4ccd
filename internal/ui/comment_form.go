package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/services"
)

// commentCharLimit bounds free-text comments
const commentCharLimit = 500

// CommentFormResult contains the result of the comment operation
type CommentFormResult struct {
	Cancelled  bool
	Error      error
	Filename   string
	NewComment string
	Record     domain.QCRecord
	Target     CommentTarget
}

// CommentForm is a Bubble Tea component for editing one free-text comment
// of an image: the QC or retouch observation comment or the next action
// comment
type CommentForm struct {
	Completed bool
	form      *huh.Form
	result    CommentFormResult
	store     *services.RecordStore
}

// NewCommentForm creates a comment form preloaded with the current comment.
// target must not be CommentFocused.
func NewCommentForm(store *services.RecordStore, filename string, target CommentTarget) *CommentForm {
	cf := &CommentForm{
		store: store,
		result: CommentFormResult{
			Filename: filename,
			Target:   target,
		},
	}

	record, _ := store.Get(filename)
	cf.result.NewComment = currentComment(record, target, store.Options())

	description := fmt.Sprintf("Comment for: %s (empty to delete)", domain.BaseFilename(filename))
	if target != CommentNextAction {
		description = fmt.Sprintf("Comment for: %s (saved while a comment observation is selected)", domain.BaseFilename(filename))
	}

	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(commentTitle(target)).
				Description(description).
				Value(&cf.result.NewComment).
				CharLimit(commentCharLimit),
		),
	)

	return cf
}

func commentTitle(target CommentTarget) string {
	switch target {
	case CommentRetouch:
		return "Retouch observation comment"
	case CommentNextAction:
		return "Next action comment"
	default:
		return "QC observation comment"
	}
}

func currentComment(record domain.QCRecord, target CommentTarget, options services.ObservationOptions) string {
	switch target {
	case CommentRetouch:
		return domain.ObservationComment(record.RetouchObservations, options.Retouch)
	case CommentNextAction:
		return record.NextActionComment
	default:
		return domain.ObservationComment(record.QCObservations, options.QC)
	}
}

func (cf *CommentForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CommentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			cf.result.Cancelled = true
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		if err := cf.applyComment(); err != nil {
			logging.Logger.Error("Failed to update comment", "error", err)
			cf.result.Error = err
		}
		return cf, nil
	}

	return cf, cmd
}

func (cf *CommentForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Result returns the form result
func (cf *CommentForm) Result() CommentFormResult {
	return cf.result
}

// applyComment stores the edited comment on the record
func (cf *CommentForm) applyComment() error {
	comment := strings.TrimSpace(cf.result.NewComment)
	filename := cf.result.Filename

	logging.Logger.Info("Updating comment",
		"filename", filename,
		"target", commentTitle(cf.result.Target),
		"comment_length", len(comment))

	switch cf.result.Target {
	case CommentRetouch:
		cf.result.Record = cf.store.SetRetouchComment(filename, comment)
	case CommentNextAction:
		cf.result.Record = cf.store.SetNextActionComment(filename, comment)
	default:
		record, ok := cf.store.SetQCComment(filename, comment)
		if !ok {
			return fmt.Errorf("QC observations are disabled while the decision is %s", domain.DecisionWrong)
		}
		cf.result.Record = record
	}
	return nil
}
