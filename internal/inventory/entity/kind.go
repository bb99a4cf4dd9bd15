package entity

import (
	"errors"
	"fmt"

	"github.com/amoylab/inventory/internal/i18n"
)

// ErrUnknownKind is returned for an entity or page name that is not recognised
var ErrUnknownKind = errors.New("unknown entity kind")

// Kind identifies one of the managed entity types
type Kind int

const (
	KindProduct Kind = iota + 1
	KindSupplier
	KindPurchase
	KindOrder
)

type kindInfo struct {
	name         string
	page         string
	uploadField  string
	uploadPrefix string
	createdMsg   string
	updatedMsg   string
}

var kinds = map[Kind]kindInfo{
	KindProduct: {
		name: "product", page: "products",
		uploadField: "image", uploadPrefix: "img_",
		createdMsg: i18n.SuccessProductCreated, updatedMsg: i18n.SuccessProductUpdated,
	},
	KindSupplier: {
		name: "supplier", page: "suppliers",
		createdMsg: i18n.SuccessSupplierCreated, updatedMsg: i18n.SuccessSupplierUpdated,
	},
	KindPurchase: {
		name: "purchase", page: "purchases",
		uploadField: "attachment", uploadPrefix: "att_",
		createdMsg: i18n.SuccessPurchaseCreated, updatedMsg: i18n.SuccessPurchaseUpdated,
	},
	KindOrder: {
		name: "order", page: "orders",
		uploadField: "attachment", uploadPrefix: "ord_",
		createdMsg: i18n.SuccessOrderCreated, updatedMsg: i18n.SuccessOrderUpdated,
	},
}

// Kinds lists every kind in menu order
func Kinds() []Kind {
	return []Kind{KindProduct, KindSupplier, KindPurchase, KindOrder}
}

// ParseKind maps an entity discriminator such as "product" to its Kind
func ParseKind(s string) (Kind, error) {
	for k, info := range kinds {
		if info.name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParsePage maps a page name such as "products" to its Kind.
// An empty page selects products.
func ParsePage(s string) (Kind, error) {
	if s == "" {
		return KindProduct, nil
	}
	for k, info := range kinds {
		if info.page == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: page %q", ErrUnknownKind, s)
}

func (k Kind) String() string { return kinds[k].name }

// Page is the list page showing this kind
func (k Kind) Page() string { return kinds[k].page }

// UploadField is the multipart field carrying the attachment, empty when the kind has none
func (k Kind) UploadField() string { return kinds[k].uploadField }

// UploadPrefix is prepended to stored attachment names
func (k Kind) UploadPrefix() string { return kinds[k].uploadPrefix }

// CreatedMessage is the notice shown after a successful create
func (k Kind) CreatedMessage() string { return kinds[k].createdMsg }

// UpdatedMessage is the notice shown after a successful update
func (k Kind) UpdatedMessage() string { return kinds[k].updatedMsg }
