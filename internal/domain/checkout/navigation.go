package checkout

// NavigationMode tells the client how to leave the page.
type NavigationMode string

const (
	NavigateRedirect    NavigationMode = "redirect"
	NavigateNewContext  NavigationMode = "new_context"
	NavigateSameContext NavigationMode = "same_context"
	NavigateDeepLink    NavigationMode = "deep_link"
)

// Navigation is the outcome of a checkout start. Fallback is set when the
// primary mode can fail on the client, e.g. a blocked popup.
type Navigation struct {
	Mode     NavigationMode
	URL      string
	Fallback *Navigation
}

func Redirect(url string) Navigation {
	return Navigation{Mode: NavigateRedirect, URL: url}
}

// NewContext opens url in a new browsing context and falls back to the current one.
func NewContext(url string) Navigation {
	return Navigation{
		Mode:     NavigateNewContext,
		URL:      url,
		Fallback: &Navigation{Mode: NavigateSameContext, URL: url},
	}
}

func DeepLink(url string) Navigation {
	return Navigation{Mode: NavigateDeepLink, URL: url}
}

// Resolve picks the mode to use given whether the client managed to open a new context.
func (n Navigation) Resolve(newContextOpened bool) Navigation {
	if n.Mode == NavigateNewContext && !newContextOpened && n.Fallback != nil {
		return *n.Fallback
	}
	return n
}
