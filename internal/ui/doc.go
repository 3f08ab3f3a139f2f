// Package ui renders CLI output with semantic colors.
//
// Each formatter names a kind of content rather than a color:
//
//	ui.Code.Sprint("tcountdown remote set")   // commands
//	ui.Path.Sprint("~/Documents/T-Countdown") // local paths
//	ui.URL.Sprint("https://dav.example.com")  // servers
//	ui.Highlight.Sprint("alice")              // user values
//	ui.Done("Uploaded")                       // "✓ Uploaded"
//	ui.Failed("Upload failed")                // "✗ Upload failed"
//	ui.Hint("Run tcountdown remote set")      // "→ Run ..."
//
// When NO_COLOR is set or the terminal has no color support, Code, URL,
// Highlight and Muted fall back to plain-text decorations so the output
// stays unambiguous.
package ui
