package macros

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
)

func TestResolveMacros(t *testing.T) {
	endpointTemplate := template.Must(template.New("endpointTemplate").Parse("http://{{.Host}}/publisher/{{.PublisherID}}"))

	resolved, err := ResolveMacros(endpointTemplate, EndpointTemplateParams{Host: "hostTest", PublisherID: "pubTest"})

	assert.NoError(t, err)
	assert.Equal(t, "http://hostTest/publisher/pubTest", resolved)
}

func TestResolveMacrosUnknownParams(t *testing.T) {
	endpointTemplate := template.Must(template.New("endpointTemplate").Parse("http://{{.Host}}/publisher/{{.NotAMacro}}"))

	resolved, err := ResolveMacros(endpointTemplate, EndpointTemplateParams{Host: "hostTest"})

	assert.Error(t, err)
	assert.Empty(t, resolved)
}
