package ui

import "testing"

func TestNoticeLifetime(t *testing.T) {
	var n Notice
	if n.Visible() || n.Opacity() != 0 {
		t.Fatal("zero notice is visible")
	}

	n.Show("Config reloaded", false)
	if !n.Visible() || n.Opacity() != 1 || n.Text() != "Config reloaded" {
		t.Fatalf("fresh notice: visible %v opacity %v", n.Visible(), n.Opacity())
	}

	n.Update(NoticeDuration - noticeFade/2)
	if o := n.Opacity(); o <= 0 || o >= 1 {
		t.Fatalf("opacity %v while fading, want strictly between 0 and 1", o)
	}

	n.Update(noticeFade)
	if n.Visible() {
		t.Fatal("notice visible after its duration")
	}
}

func TestNoticeShowRestarts(t *testing.T) {
	var n Notice
	n.Show("first", false)
	n.Update(NoticeDuration - 1)
	n.Show("second", true)
	n.Update(NoticeDuration - 1)
	if !n.Visible() || n.Text() != "second" {
		t.Fatalf("visible %v text %q", n.Visible(), n.Text())
	}
}
