package dto

// AssignCatalogItemsRequest merges items into an assigned-name set
// (standards or subjects)
type AssignCatalogItemsRequest struct {
	Items []string `json:"items" binding:"required,min=1,dive,required"`
}

// RemoveCatalogItemsRequest removes items from an assigned-name set.
// Every item must currently be assigned.
type RemoveCatalogItemsRequest = AssignCatalogItemsRequest

// CatalogResponse is the sorted assigned-name set
type CatalogResponse struct {
	Items []string `json:"items"`
}
