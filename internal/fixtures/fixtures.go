// Package fixtures exposes the data bundled into the binary: the product
// catalog, promotional banners, store contact details and the chat hand-off
// configuration.
package fixtures

import (
	"embed"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

//go:embed data/*.json
var files embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decode(name string, v any) error {
	data, err := files.ReadFile("data/" + name)
	if err != nil {
		return errors.Wrapf(err, "read fixture %s", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "decode fixture %s", name)
	}
	return nil
}

func Products() ([]model.Product, error) {
	var doc struct {
		Products []model.Product `json:"products"`
	}
	if err := decode("products.json", &doc); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func Banners() ([]model.Banner, error) {
	var doc struct {
		Banners []model.Banner `json:"banners"`
	}
	if err := decode("banners.json", &doc); err != nil {
		return nil, err
	}
	return doc.Banners, nil
}

func Contact() (model.ContactInfo, error) {
	var doc struct {
		ContactInfo model.ContactInfo `json:"contactInfo"`
	}
	err := decode("contact.json", &doc)
	return doc.ContactInfo, err
}

func Messaging() (model.MessagingConfig, error) {
	var cfg model.MessagingConfig
	err := decode("whatsapp.json", &cfg)
	return cfg, err
}
