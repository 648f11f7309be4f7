package common

// ABIs of the remote contracts this library talks to. They are fixed
// deployments; keeping the JSON inline avoids any runtime file lookup.

const erc223abi = `[
{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"},{"name":"_data","type":"bytes"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"_spender","type":"address"},{"name":"_value","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":true,"inputs":[{"name":"_owner","type":"address"},{"name":"_spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}
]`

const dethercoreabi = `[
{"constant":true,"inputs":[{"name":"_teller","type":"address"}],"name":"getTeller","outputs":[{"name":"lat","type":"int256"},{"name":"lng","type":"int256"},{"name":"countryId","type":"bytes2"},{"name":"postalCode","type":"bytes16"},{"name":"currencyId","type":"int8"},{"name":"messenger","type":"bytes16"},{"name":"avatarId","type":"int8"},{"name":"rates","type":"int16"},{"name":"balance","type":"uint256"},{"name":"online","type":"bool"},{"name":"buyer","type":"bool"},{"name":"buyRates","type":"int16"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"_shop","type":"address"}],"name":"getShop","outputs":[{"name":"lat","type":"int256"},{"name":"lng","type":"int256"},{"name":"countryId","type":"bytes2"},{"name":"postalCode","type":"bytes16"},{"name":"cat","type":"bytes16"},{"name":"name","type":"bytes16"},{"name":"description","type":"bytes32"},{"name":"opening","type":"bytes16"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"_teller","type":"address"}],"name":"getReput","outputs":[{"name":"buyVolume","type":"uint256"},{"name":"sellVolume","type":"uint256"},{"name":"nbTrade","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"getAllTellers","outputs":[{"name":"","type":"address[]"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"getAllShops","outputs":[{"name":"","type":"address[]"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"_country","type":"bytes2"},{"name":"_postalcode","type":"bytes16"}],"name":"getZoneTeller","outputs":[{"name":"","type":"address[]"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"_country","type":"bytes2"},{"name":"_postalcode","type":"bytes16"}],"name":"getZoneShop","outputs":[{"name":"","type":"address[]"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes2"}],"name":"licenceTeller","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes2"}],"name":"licenceShop","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes2"}],"name":"openedCountryTeller","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"","type":"bytes2"}],"name":"openedCountryShop","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"_teller","type":"address"}],"name":"getTellerBalance","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[],"name":"addFunds","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
{"constant":false,"inputs":[{"name":"_currencyId","type":"int8"},{"name":"_messenger","type":"bytes16"},{"name":"_avatarId","type":"int8"},{"name":"_rates","type":"int16"},{"name":"_online","type":"bool"}],"name":"updateTeller","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
{"constant":false,"inputs":[],"name":"deleteTeller","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[],"name":"switchTellerOffline","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_amount","type":"uint256"}],"name":"sellEth","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

const kyberproxyabi = `[
{"constant":true,"inputs":[],"name":"enabled","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"maxGasPrice","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"src","type":"address"},{"name":"dest","type":"address"},{"name":"srcQty","type":"uint256"}],"name":"getExpectedRate","outputs":[{"name":"expectedRate","type":"uint256"},{"name":"slippageRate","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":false,"inputs":[{"name":"src","type":"address"},{"name":"srcAmount","type":"uint256"},{"name":"dest","type":"address"},{"name":"destAddress","type":"address"},{"name":"maxDestAmount","type":"uint256"},{"name":"minConversionRate","type":"uint256"},{"name":"walletId","type":"address"}],"name":"trade","outputs":[{"name":"","type":"uint256"}],"payable":true,"stateMutability":"payable","type":"function"}
]`
