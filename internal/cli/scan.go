package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/moodbuddy/moodbuddy/internal/constants"
	"github.com/moodbuddy/moodbuddy/internal/eeg"
	apperrors "github.com/moodbuddy/moodbuddy/internal/errors"
	"github.com/moodbuddy/moodbuddy/internal/interpret"
	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/models"
	"github.com/moodbuddy/moodbuddy/internal/render"
	"github.com/moodbuddy/moodbuddy/internal/store"
	"github.com/moodbuddy/moodbuddy/internal/tui/scanwin"
	"github.com/moodbuddy/moodbuddy/internal/validation"
)

type ScanCmd struct {
	Emotion string `short:"e" help:"Detected facial emotion (prompted when omitted)."`
	Window  int    `short:"w" help:"Sampling window in seconds (defaults to config sample_window)."`
	Note    string `short:"n" help:"Free-text note to attach to the saved entry."`
	NoSave  bool   `help:"Run the analysis without recording a mood entry."`
	Chat    bool   `short:"c" help:"Hand the result off to the chat assistant."`
}

func (c *ScanCmd) Run(ctx *Context) error {
	sess, err := ctx.requireSession()
	if err != nil {
		return err
	}

	mood := constants.Mood(c.Emotion)
	if c.Emotion == "" {
		if err := promptEmotion(&mood); err != nil {
			return err
		}
	}
	if !models.ValidMood(mood) {
		return fmt.Errorf("invalid emotion: %q", mood)
	}

	window := c.Window
	if window <= 0 {
		window = ctx.Config.SampleWindow
	}

	bg := context.Background()
	collector := eeg.NewCollector(ctx.Gateway, window, constants.DefaultSampleInterval)

	fmt.Println("Connecting to EEG device...")
	if err := collector.Connect(bg); err != nil {
		return err
	}

	snapshots, err := scanwin.Run(bg, collector, window)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("no EEG samples captured, is the device streaming?")
	}

	averaged := eeg.Average(snapshots)
	dominant := interpret.DominantBand(averaged)

	analysis := analyze(ctx, mood, averaged, dominant)

	fmt.Println(render.BandBars(averaged, dominant))
	fmt.Println(render.AnalysisCard(*analysis))

	if !c.NoSave {
		if err := c.saveScan(ctx, mood, analysis); err != nil {
			return err
		}
	}

	if c.Chat {
		reply, err := ctx.Gateway.SendChat(bg, sess.Username, analysis.ChatPrompt)
		if err != nil {
			return err
		}
		fmt.Printf("\nassistant> %s\n", reply)
	} else if analysis.ChatAsk != "" {
		fmt.Printf("\nRun 'moodbuddy chat \"%s\"' to talk it through.\n", analysis.ChatPrompt)
	}
	return nil
}

// analyze asks the backend for the combined reading and falls back to the
// built-in pairing table when the backend is unreachable. Both paths produce
// the same shape, so everything downstream is offline-safe.
func analyze(ctx *Context, mood constants.Mood, averaged []models.AveragedBandPower, dominant constants.Band) *models.CombinedAnalysis {
	remote, err := ctx.Gateway.Analyze(context.Background(), string(mood), interpret.ToAnalysisBands(averaged))
	if err != nil {
		logger.Warn("Remote analysis failed, using built-in pairing table", "error", err)
		local := interpret.Combine(mood, dominant)
		return &local
	}
	return remote
}

func (c *ScanCmd) saveScan(ctx *Context, mood constants.Mood, analysis *models.CombinedAnalysis) error {
	entry := models.MoodEntry{
		Date:              time.Now().Format(constants.DateFormat),
		Mood:              mood,
		CombinedMood:      analysis.CombinedMood,
		EEGEmotionalState: analysis.EEG.EmotionalState,
		Note:              c.Note,
	}
	if err := validation.ValidateEntry(entry); err != nil {
		return err
	}

	s, provider, err := ctx.openStore(context.Background())
	if err != nil {
		return err
	}
	defer provider.Close()

	saved, err := s.Save(context.Background(), entry)
	if err != nil {
		if errors.Is(err, store.ErrPartialSync) {
			fmt.Printf("Recorded %s for %s\n", saved.Mood, saved.Date)
			apperrors.Notice("remote sync failed, entry saved locally only")
			return nil
		}
		return err
	}

	fmt.Printf("Recorded %s for %s\n", saved.Mood, saved.Date)
	return nil
}

func promptEmotion(mood *constants.Mood) error {
	options := make([]huh.Option[constants.Mood], 0, len(constants.MoodOrder))
	for _, m := range constants.MoodOrder {
		options = append(options, huh.NewOption(interpret.MoodTitle(m), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.Mood]().
				Title("Detected facial emotion").
				Description("Pick the emotion the camera scan reported.").
				Options(options...).
				Value(mood),
		),
	).WithTheme(huh.ThemeDracula())
	return form.Run()
}
