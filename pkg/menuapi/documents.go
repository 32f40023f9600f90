package menuapi

// GraphQL documents for the upstream menu schema. Field sets follow the
// upstream; responses tolerate additive evolution because decoding
// ignores unknown fields.

const pingQuery = `
  query ping {
    __typename
  }
`

const menuListingQuery = `
  query menuItemListingQuery {
    restaurant {
      settings {
        menu {
          menuItemCategories {
            uuid
            name
            sortingIndex
            isFromHq
            menuItems {
              uuid
              name
              price
              type
              sortingIndex
              enabled
              isIncomplete
              menuItemCategoryUuid
              isFromHq
              picture
              onlineRestaurantMenuItem {
                uuid
              }
            }
          }
        }
      }
    }
  }
`

const menuItemQuery = `
  query menuItemItemRecordQuery($uuid: UUID!) {
    restaurant {
      settings {
        menu {
          menuItem(uuid: $uuid) {
            uuid
            name
            price
            type
            sortingIndex
            enabled
            isIncomplete
            menuItemCategoryUuid
            isFromHq
            picture
            externalId
            customizedTaxEnabled
            customizedTaxType
            customizedTaxRate
            comboItemCategories {
              uuid
              name
              allowRepeatableSelection
              minimumSelection
              maximumSelection
              comboMenuItemSortingType
              comboMenuItems {
                uuid
                price
                menuItemUuid
              }
            }
            onlineRestaurantMenuItem {
              uuid
            }
            grabfoodMenuItem {
              uuid
            }
            ubereatsMenuItem {
              uuid
            }
            ubereatsV2MenuItem {
              uuid
            }
            foodpandaMenuItem {
              uuid
            }
            itemTagRelationshipList {
              followingSeparatorCount
              tagLikeObject {
                ... on MenuItemTagInItemType {
                  __typename
                  menuItemTagUuid
                }
                ... on TagGroupInItemType {
                  __typename
                  tagGroupUuid
                  subTagInItems {
                    subTagUuid
                    enabledInformation {
                      subTagInItemEnabled
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
`

const comboDependencyScanQuery = `
  query comboDependencyCheckQuery {
    restaurant {
      settings {
        menu {
          menuItemCategories {
            uuid
            name
            menuItems {
              uuid
              name
              type
              enabled
              comboItemCategories {
                uuid
                name
                minimumSelection
                maximumSelection
                allowRepeatableSelection
                comboMenuItems {
                  uuid
                  menuItemUuid
                  name
                }
              }
            }
          }
        }
      }
    }
  }
`

const createMenuItemMutation = `
  mutation menuItemItemCreateMutation($payload: CreateMenuItemPayload!) {
    restaurant {
      settings {
        menu {
          createMenuItem(payload: $payload) {
            uuid
            name
            type
            comboItemCategories {
              uuid
              name
              allowRepeatableSelection
              minimumSelection
              maximumSelection
              comboMenuItemSortingType
              comboMenuItems {
                uuid
                price
                menuItemUuid
              }
            }
          }
        }
      }
    }
  }
`

const updateMenuItemMutation = `
  mutation menuItemItemEditMutation($uuid: UUID!, $payload: UpdateMenuItemPayload!) {
    restaurant {
      settings {
        menu {
          updateMenuItem(uuid: $uuid, payload: $payload) {
            uuid
          }
        }
      }
    }
  }
`

const deleteMenuItemMutation = `
  mutation menuItemItemDeleteMutation($uuid: UUID!) {
    restaurant {
      settings {
        menu {
          deleteMenuItem(uuid: $uuid) {
            uuid
          }
        }
      }
    }
  }
`

const createCategoryMutation = `
  mutation menuItemCategoryCreateMutation($payload: CreateMenuItemCategoryPayload!) {
    restaurant {
      settings {
        menu {
          createMenuItemCategory(payload: $payload) {
            uuid
          }
        }
      }
    }
  }
`

const updateSoldOutItemsMutation = `
  mutation updateSoldOutMenuItems($soldOutMenuItems: [UpdateSoldOutItemInputObjectType]) {
    restaurant {
      settings {
        menu {
          updateSoldOutItems(soldOutMenuItems: $soldOutMenuItems) {
            updatedSoldOutMenuItems {
              uuid
              isSoldOut
            }
          }
        }
      }
    }
  }
`

const tagListingQuery = `
  query menuItemTagListingQuery {
    restaurant {
      settings {
        menu {
          menuItemTags {
            uuid
            name
            type
            enabled
            price
            sortingIndex
          }
          tagGroups {
            uuid
            name
            enabled
            sortingIndex
            subTags {
              uuid
              name
              type
              enabled
              price
              sortingIndex
            }
          }
        }
      }
    }
  }
`

const onlineMenuListingQuery = `
  query onlineRestaurantMenuItemListingQuery {
    restaurant {
      settings {
        menu {
          integration {
            onlineRestaurant {
              categories {
                uuid
                name
                sortingIndex
                menuItems {
                  uuid
                  ichefUuid
                  originalName
                  customizedName
                  originalPrice
                  menuItemType
                  pictureFilename
                  sortingIndex
                }
              }
            }
          }
        }
      }
    }
  }
`

const onlineImportMutation = `
  mutation onlineRestaurantMenuItemImportMutation($categoryUuid: UUID!, $ichefMenuItemUuids: [UUID]!) {
    restaurant {
      settings {
        menu {
          integration {
            onlineRestaurant {
              importMenuItemToCategory(uuid: $categoryUuid, ichefMenuItemUuids: $ichefMenuItemUuids) {
                uuid
                name
                menuItems {
                  uuid
                  ichefUuid
                  originalName
                }
              }
            }
          }
        }
      }
    }
  }
`

const onlineBatchDeleteMutation = `
  mutation onlineRestaurantMenuItemBatchDeleteMutation($menuItemUuids: [UUID]) {
    restaurant {
      settings {
        menu {
          integration {
            onlineRestaurant {
              deleteMenu(menuItemUuids: $menuItemUuids) {
                deletedMenuItemUuids
              }
            }
          }
        }
      }
    }
  }
`

const onlineInformationEditMutation = `
  mutation onlineRestaurantInformationEditMutation($payload: UpdateOnlineRestaurantInformationInputObject!) {
    restaurant {
      settings {
        onlineOrderingIntegration {
          onlineRestaurant {
            updateOnlineRestaurantInformation(payload: $payload) {
              name
            }
          }
        }
      }
    }
  }
`
