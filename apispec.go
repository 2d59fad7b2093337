package viddler

import (
	"github.com/go-viddler/viddler/params"
)

// EndpointSpec lists the attributes an endpoint accepts from callers.
// Cross-cutting parameters (api_key, sessionid) are not part of it.
type EndpointSpec struct {
	Required []string
	Optional []string
	// AnyOptional accepts any key outside Required.
	AnyOptional bool
}

// FallbackSpec applies to endpoints without a registered spec: nothing is
// required and anything is accepted.
var FallbackSpec = EndpointSpec{AnyOptional: true}

// Registry maps endpoint names to their EndpointSpec. It is immutable once
// built and safe for concurrent use.
type Registry struct {
	specs map[string]EndpointSpec
}

// NewRegistry returns a Registry holding a copy of specs. Keys may be
// given with or without the "viddler." prefix.
func NewRegistry(specs map[string]EndpointSpec) *Registry {
	r := &Registry{specs: make(map[string]EndpointSpec, len(specs))}
	for name, s := range specs {
		r.specs[shortName(name)] = EndpointSpec{
			Required:    append([]string(nil), s.Required...),
			Optional:    append([]string(nil), s.Optional...),
			AnyOptional: s.AnyOptional,
		}
	}
	return r
}

var defaultSpecs = map[string]EndpointSpec{
	"users.register": {
		Required: []string{
			"user",
			"email",
			"fname",
			"lname",
			"password",
			"question",
			"answer",
			"lang",
			"termsaccepted",
		},
		Optional: []string{"company"},
	},
	"users.setProfile": {
		Optional: []string{
			"first_name",
			"last_name",
			"about_me",
			"birthdate",
			"gender",
			"company",
			"city",
		},
	},
	"users.setOptions": {
		Optional: []string{
			"show_account",
			"tagging_enabled",
			"commenting_enabled",
			"show_related_videos",
			"embedding_enabled",
			"clicking_through_enabled",
			"email_this_enabled",
			"trackbacks_enabled",
			"favourites_enabled",
			"custom_logo_enabled",
		},
	},
	"videos.upload": {
		Required: []string{
			"title",
			"description",
			"tags",
			"file",
			"make_public",
		},
	},
	"videos.setDetails": {
		Optional: []string{
			"title",
			"description",
			"tags",
			"view_perm",
			"view_users",
			"view_use_secret",
			"embed_perm",
			"embed_users",
			"commenting_perm",
			"commenting_users",
			"tagging_perm",
			"tagging_users",
			"download_perm",
			"download_users",
		},
	},
	"videos.getByUser": {
		Required: []string{"user"},
		Optional: []string{"page", "per_page"},
	},
	"videos.getByTag": {
		Required: []string{"tag"},
		Optional: []string{"page", "per_page"},
	},
}

// DefaultRegistry returns the registry of the endpoints this package
// knows about.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultSpecs)
}

// Spec returns the spec for endpoint, or FallbackSpec.
func (r *Registry) Spec(endpoint string) EndpointSpec {
	if r != nil {
		if s, ok := r.specs[shortName(endpoint)]; ok {
			return s
		}
	}
	return FallbackSpec
}

// Validate checks attrs against the spec of endpoint. Unknown keys are
// reported before missing ones.
func (r *Registry) Validate(endpoint string, attrs params.Values) error {
	s := r.Spec(endpoint)
	name := shortName(endpoint)

	if !s.AnyOptional {
		allowed := make(map[string]bool, len(s.Required)+len(s.Optional))
		for _, k := range s.Required {
			allowed[k] = true
		}
		for _, k := range s.Optional {
			allowed[k] = true
		}
		var unknown []string
		for _, k := range attrs.Keys() {
			if !allowed[k] {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			return &UnknownAttributeError{Endpoint: name, Keys: unknown}
		}
	}

	var missing []string
	for _, k := range s.Required {
		if !attrs.Has(k) {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingAttributeError{Endpoint: name, Keys: missing}
	}

	return nil
}
