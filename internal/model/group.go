package model

// AdminGroup is the group required to use the administrative API.
const AdminGroup = "lldap_admin"
