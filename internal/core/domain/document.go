package domain

import "fmt"

// IndexDocument is one flat search index document. An enricher chain
// fills in the fields relevant to the resource's object type; unset
// fields stay absent from the persisted record.
//
// Keywords, Content and SpOrganisationPath are additive: enrichers
// merge into whatever previous enrichers already wrote there.
type IndexDocument struct {
	ID          string `json:"id,omitempty"`
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`

	Keywords      []string `json:"keywords,omitempty"`
	SpContentType []string `json:"sp_contenttype,omitempty"`

	SpName        string `json:"sp_name,omitempty"`
	SpTitle       string `json:"sp_title,omitempty"`
	SpSortvalue   string `json:"sp_sortvalue,omitempty"`
	SpStartletter string `json:"sp_startletter,omitempty"`

	SpOrganisation     int   `json:"sp_organisation,omitempty"`
	SpOrganisationPath []int `json:"sp_organisation_path,omitempty"`

	SpCitygovFirstname         string   `json:"sp_citygov_firstname,omitempty"`
	SpCitygovLastname          string   `json:"sp_citygov_lastname,omitempty"`
	SpCitygovStartletter       string   `json:"sp_citygov_startletter,omitempty"`
	SpCitygovFunction          string   `json:"sp_citygov_function,omitempty"`
	SpCitygovOrganisation      []string `json:"sp_citygov_organisation,omitempty"`
	SpCitygovOrganisationtoken []string `json:"sp_citygov_organisationtoken,omitempty"`
	SpCitygovProduct           []string `json:"sp_citygov_product,omitempty"`
	SpCitygovPhone             []string `json:"sp_citygov_phone,omitempty"`
	SpCitygovEmail             []string `json:"sp_citygov_email,omitempty"`
	SpCitygovAddress           string   `json:"sp_citygov_address,omitempty"`

	// MetaString holds dynamic sp_meta_string_<name> fields.
	MetaString map[string][]string `json:"-"`
}

// SetMetaString stores values under the dynamic meta string field name.
func (d *IndexDocument) SetMetaString(name string, values []string) {
	if d.MetaString == nil {
		d.MetaString = make(map[string][]string)
	}
	d.MetaString[name] = values
}

// Clone returns a deep copy of the document. Alternative-title
// expansion mutates clones without touching the origin document.
func (d *IndexDocument) Clone() *IndexDocument {
	c := *d
	c.Keywords = cloneStrings(d.Keywords)
	c.SpContentType = cloneStrings(d.SpContentType)
	c.SpOrganisationPath = cloneInts(d.SpOrganisationPath)
	c.SpCitygovOrganisation = cloneStrings(d.SpCitygovOrganisation)
	c.SpCitygovOrganisationtoken = cloneStrings(d.SpCitygovOrganisationtoken)
	c.SpCitygovProduct = cloneStrings(d.SpCitygovProduct)
	c.SpCitygovPhone = cloneStrings(d.SpCitygovPhone)
	c.SpCitygovEmail = cloneStrings(d.SpCitygovEmail)
	if d.MetaString != nil {
		c.MetaString = make(map[string][]string, len(d.MetaString))
		for k, v := range d.MetaString {
			c.MetaString[k] = cloneStrings(v)
		}
	}
	return &c
}

// Fields returns the document as a sparse field map the way the index
// expects it: zero-valued fields are left out entirely, and meta
// string entries appear under their sp_meta_string_<name> key.
func (d *IndexDocument) Fields() map[string]any {
	fields := make(map[string]any)

	setString := func(name, value string) {
		if value != "" {
			fields[name] = value
		}
	}
	setStrings := func(name string, values []string) {
		if len(values) > 0 {
			fields[name] = values
		}
	}

	setString("id", d.ID)
	setString("url", d.URL)
	setString("title", d.Title)
	setString("description", d.Description)
	setString("content", d.Content)
	setStrings("keywords", d.Keywords)
	setStrings("sp_contenttype", d.SpContentType)
	setString("sp_name", d.SpName)
	setString("sp_title", d.SpTitle)
	setString("sp_sortvalue", d.SpSortvalue)
	setString("sp_startletter", d.SpStartletter)
	if d.SpOrganisation != 0 {
		fields["sp_organisation"] = d.SpOrganisation
	}
	if len(d.SpOrganisationPath) > 0 {
		fields["sp_organisation_path"] = d.SpOrganisationPath
	}
	setString("sp_citygov_firstname", d.SpCitygovFirstname)
	setString("sp_citygov_lastname", d.SpCitygovLastname)
	setString("sp_citygov_startletter", d.SpCitygovStartletter)
	setString("sp_citygov_function", d.SpCitygovFunction)
	setStrings("sp_citygov_organisation", d.SpCitygovOrganisation)
	setStrings("sp_citygov_organisationtoken", d.SpCitygovOrganisationtoken)
	setStrings("sp_citygov_product", d.SpCitygovProduct)
	setStrings("sp_citygov_phone", d.SpCitygovPhone)
	setStrings("sp_citygov_email", d.SpCitygovEmail)
	setString("sp_citygov_address", d.SpCitygovAddress)

	for name, values := range d.MetaString {
		setStrings(fmt.Sprintf("sp_meta_string_%s", name), values)
	}

	return fields
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}
