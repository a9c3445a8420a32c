package docbrand_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/freightdocs/go-docbrand"
)

func ExampleRenderer_Render() {
	renderer := docbrand.NewRenderer()

	doc, err := renderer.Render(context.Background(), docbrand.DocumentInput{
		RawContent: "# Welcome\n\nThank you for choosing {{company_name}}.\n",
		Title:      "Welcome Letter",
		Version:    "1.0",
	}, docbrand.RenderOptions{
		GeneratedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		fmt.Println("render failed:", err)
		return
	}

	fmt.Println(doc.SuggestedFilename)
	fmt.Println(strings.Contains(doc.Markup, "Thank you for choosing FreightDocs."))
	// Output:
	// welcome-letter-v1-0.html
	// true
}

func ExampleBrandingStore_SetProfile() {
	renderer := docbrand.NewRenderer()

	profile, err := renderer.Branding().SetProfile("acme", docbrand.ProfilePatch{
		Identity: &docbrand.IdentityPatch{
			CompanyName: docbrand.String("Acme Freight"),
			Tagline:     docbrand.String("On time, every time"),
		},
	})
	if err != nil {
		fmt.Println("update failed:", err)
		return
	}

	fmt.Println(profile.Identity.CompanyName)
	fmt.Println(profile.Version)
	// Output:
	// Acme Freight
	// 1.0.1
}
