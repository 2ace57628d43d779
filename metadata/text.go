// Copyright 2021 Airbus Defence and Space
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"strings"

	"golang.org/x/text/language"
)

// InternationalString is a text that may be available in several languages.
type InternationalString interface {
	// String returns the text in its default language
	String() string
	// Localized returns the text in the requested language, falling back to
	// the default language when no translation exists
	Localized(tag language.Tag) string
}

// Literal is an InternationalString that has the same value in every language
type Literal string

func (l Literal) String() string {
	return string(l)
}

// Localized returns l whatever the requested language
func (l Literal) Localized(language.Tag) string {
	return string(l)
}

// Text returns value as an InternationalString, or nil if value is empty or
// made only of white spaces. Surrounding spaces are removed.
func Text(value string) InternationalString {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return Literal(value)
}

// Translations is an InternationalString holding one text per language. The
// text for language.Und is used as default.
type Translations map[language.Tag]string

func (t Translations) String() string {
	return t.Localized(language.Und)
}

// Localized returns the text for the closest available language
func (t Translations) Localized(tag language.Tag) string {
	if s, ok := t[tag]; ok {
		return s
	}
	if tag != language.Und {
		tags := make([]language.Tag, 0, len(t))
		for k := range t {
			if k != language.Und {
				tags = append(tags, k)
			}
		}
		if len(tags) > 0 {
			_, idx, conf := language.NewMatcher(tags).Match(tag)
			if conf != language.No {
				return t[tags[idx]]
			}
		}
	}
	return t[language.Und]
}
